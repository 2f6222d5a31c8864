// Package placesapi sources vendor listings from an external
// local-business search provider and normalizes them into the directory's
// Vendor shape. Provider outages never surface to callers: searches fall
// back to deterministic placeholder vendors and detail lookups report
// not-found.
package placesapi

import (
	"context"
	"errors"

	"weddingdir/internal/refdata"
)

// ErrVendorNotFound is returned when a detail lookup yields no listing.
var ErrVendorNotFound = errors.New("vendor not found")

// Source tells callers whether a page holds real provider data or
// synthetic fallback records.
type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// Vendor is the uniform vendor record served to pages and the API.
// It is rebuilt from provider data on every request, never persisted.
type Vendor struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Location      refdata.Location  `json:"location"`
	Rating        float64           `json:"rating"`
	ReviewCount   int               `json:"reviewCount"`
	Phone         string            `json:"phone,omitempty"`
	Website       string            `json:"website,omitempty"`
	Address       string            `json:"address,omitempty"`
	Description   string            `json:"description"`
	Images        []string          `json:"images"`
	BusinessHours map[string]string `json:"businessHours,omitempty"`
	PriceRange    string            `json:"priceRange,omitempty"`
}

// VendorPage is one page of normalized vendors plus its origin.
type VendorPage struct {
	Vendors []Vendor `json:"vendors"`
	Total   int      `json:"total"`
	Source  Source   `json:"source"`
}

// SearchRequest is the provider-agnostic search input.
type SearchRequest struct {
	Keyword      string
	LocationName string
	Depth        int
}

// RatingInfo is a listing's aggregate rating, absent when the business
// has never been rated.
type RatingInfo struct {
	Value      float64 `json:"value"`
	VotesCount int     `json:"votes_count"`
}

// BusinessItem is a single listing as reported by the provider. Every
// field other than Title may be missing.
type BusinessItem struct {
	PlaceID     string            `json:"place_id,omitempty"`
	Title       string            `json:"title"`
	Rating      *RatingInfo       `json:"rating,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Website     string            `json:"website,omitempty"`
	Address     string            `json:"address,omitempty"`
	Description string            `json:"description,omitempty"`
	Photos      []string          `json:"photos,omitempty"`
	Schedule    map[string]string `json:"schedule,omitempty"`
	PriceLevel  string            `json:"price_level,omitempty"`
}

// Client is the outbound provider boundary. Tests substitute failing or
// canned implementations to drive the fallback paths.
type Client interface {
	SearchBusinesses(ctx context.Context, req SearchRequest) ([]BusinessItem, error)
	BusinessByID(ctx context.Context, id string) (*BusinessItem, error)
}
