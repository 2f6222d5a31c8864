package placesapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"weddingdir/internal/refdata"
)

const (
	defaultRating     = 4.5
	defaultPriceRange = "$$"
	placeholderImage  = "/placeholder.jpg"
)

// SearchOptions bound a single vendor search.
type SearchOptions struct {
	Limit  int
	Offset int
}

// Searcher turns provider listings into Vendors. It owns the
// availability-over-correctness policy: a provider failure yields a
// fallback page instead of an error.
type Searcher struct {
	client Client
	log    zerolog.Logger
}

// NewSearcher wraps a provider client.
func NewSearcher(client Client, log zerolog.Logger) *Searcher {
	return &Searcher{client: client, log: log}
}

// SearchVendors queries the provider for keyword businesses around the
// location and normalizes each listing. The page is never empty: on any
// provider error the returned page carries six synthetic vendors and is
// marked SourceFallback.
func (s *Searcher) SearchVendors(ctx context.Context, keyword string, loc refdata.Location, opts SearchOptions) VendorPage {
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	req := SearchRequest{
		Keyword:      providerKeyword(keyword, loc),
		LocationName: fmt.Sprintf("%s, %s, United States", loc.City, loc.StateName),
		// The provider has no offset parameter: ask deep enough that the
		// caller can slice out its page locally.
		Depth: opts.Offset + limit,
	}

	items, err := s.client.SearchBusinesses(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("keyword", keyword).Str("location", loc.Display()).
			Msg("provider search failed, serving fallback vendors")
		return fallbackPage(keyword, loc)
	}

	vendors := make([]Vendor, 0, len(items))
	for _, item := range items {
		vendors = append(vendors, s.vendorFromItem(item, keyword, loc))
	}
	return VendorPage{Vendors: vendors, Total: len(vendors), Source: SourceProvider}
}

// VendorDetails fetches one vendor by provider id. Provider errors and
// unknown ids both come back as ErrVendorNotFound; detail pages treat
// the two the same way.
func (s *Searcher) VendorDetails(ctx context.Context, vendorID string, loc refdata.Location) (*Vendor, error) {
	item, err := s.client.BusinessByID(ctx, vendorID)
	if err != nil {
		s.log.Error().Err(err).Str("vendor_id", vendorID).Msg("provider detail lookup failed")
		return nil, fmt.Errorf("%w: %s", ErrVendorNotFound, vendorID)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrVendorNotFound, vendorID)
	}

	vendor := s.vendorFromItem(*item, "Wedding Vendor", loc)
	vendor.ID = vendorID
	if item.Description == "" {
		vendor.Description = "A professional wedding vendor."
	}
	return &vendor, nil
}

// vendorFromItem applies the documented field precedence: provider value
// when present, fixed default otherwise.
func (s *Searcher) vendorFromItem(item BusinessItem, keyword string, loc refdata.Location) Vendor {
	vendor := Vendor{
		ID:            item.PlaceID,
		Name:          item.Title,
		Category:      keyword,
		Location:      loc,
		Rating:        defaultRating,
		ReviewCount:   0,
		Phone:         item.Phone,
		Website:       item.Website,
		Address:       item.Address,
		Description:   item.Description,
		Images:        item.Photos,
		BusinessHours: item.Schedule,
		PriceRange:    item.PriceLevel,
	}
	if vendor.ID == "" {
		vendor.ID = uuid.NewString()
	}
	if item.Rating != nil {
		vendor.Rating = item.Rating.Value
		vendor.ReviewCount = item.Rating.VotesCount
	}
	if vendor.Address == "" {
		vendor.Address = loc.Display()
	}
	if vendor.Description == "" {
		vendor.Description = fmt.Sprintf("Professional %s in %s", strings.ToLower(keyword), loc.City)
	}
	if len(vendor.Images) == 0 {
		vendor.Images = []string{placeholderImage}
	}
	if len(vendor.BusinessHours) == 0 {
		vendor.BusinessHours = defaultBusinessHours()
	}
	if vendor.PriceRange == "" {
		vendor.PriceRange = defaultPriceRange
	}
	return vendor
}

func providerKeyword(keyword string, loc refdata.Location) string {
	return strings.TrimSpace(fmt.Sprintf("%s wedding vendors in %s", keyword, loc.City))
}

func defaultBusinessHours() map[string]string {
	return map[string]string{
		"Monday":    "9:00 AM - 5:00 PM",
		"Tuesday":   "9:00 AM - 5:00 PM",
		"Wednesday": "9:00 AM - 5:00 PM",
		"Thursday":  "9:00 AM - 5:00 PM",
		"Friday":    "9:00 AM - 5:00 PM",
	}
}
