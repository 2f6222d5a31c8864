// Package searchservice composes query, location and category into
// provider searches and shapes the results into pages.
package searchservice

import (
	"context"
	"strings"

	"weddingdir/internal/placesapi"
	"weddingdir/internal/refdata"
)

// VendorSearcher is the slice of placesapi.Searcher the aggregator
// needs; tests substitute canned pages.
type VendorSearcher interface {
	SearchVendors(ctx context.Context, keyword string, loc refdata.Location, opts placesapi.SearchOptions) placesapi.VendorPage
}

// Service aggregates vendor searches.
type Service struct {
	searcher VendorSearcher
}

// New creates a search aggregator over a vendor searcher.
func New(searcher VendorSearcher) *Service {
	return &Service{searcher: searcher}
}

// Options control pagination and category scoping.
type Options struct {
	Page     int
	Limit    int
	Category string
}

// SearchResult is one page of vendors plus pagination metadata.
type SearchResult struct {
	Vendors   []placesapi.Vendor `json:"vendors"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"pageSize"`
	PageCount int                `json:"pageCount"`
	Source    placesapi.Source   `json:"source"`
}

// SearchAllVendors searches the provider and returns the requested
// page. When a category is set, the effective keyword is the category
// followed by the free-text query. The provider cannot seek to an
// offset, so the service requests offset+limit items and slices the
// page out locally; a page past the end of the data comes back with an
// empty vendor list and intact metadata.
func (s *Service) SearchAllVendors(ctx context.Context, query string, loc refdata.Location, opts Options) SearchResult {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	keyword := query
	if opts.Category != "" {
		keyword = strings.TrimSpace(opts.Category + " " + query)
	}

	found := s.searcher.SearchVendors(ctx, keyword, loc, placesapi.SearchOptions{
		Limit:  limit,
		Offset: offset,
	})

	return SearchResult{
		Vendors:   slicePage(found.Vendors, offset, limit),
		Total:     found.Total,
		Page:      page,
		PageSize:  limit,
		PageCount: pageCount(found.Total, limit),
		Source:    found.Source,
	}
}

// SearchVendorsByCategory lists a category with no free-text query.
func (s *Service) SearchVendorsByCategory(ctx context.Context, category string, loc refdata.Location, opts Options) SearchResult {
	opts.Category = category
	return s.SearchAllVendors(ctx, "", loc, opts)
}

func slicePage(vendors []placesapi.Vendor, offset, limit int) []placesapi.Vendor {
	if offset >= len(vendors) {
		return []placesapi.Vendor{}
	}
	end := offset + limit
	if end > len(vendors) {
		end = len(vendors)
	}
	return vendors[offset:end]
}

func pageCount(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
