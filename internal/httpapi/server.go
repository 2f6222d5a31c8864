// Package httpapi exposes the directory's JSON API: vendor search,
// vendor details, reviews, registration intake and the reference data
// listings.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"weddingdir/internal/placesapi"
	"weddingdir/internal/refdata"
	"weddingdir/internal/registration"
	"weddingdir/internal/reviews"
	"weddingdir/internal/searchservice"
)

// ReferenceData captures the lookups the handlers need from the
// reference data provider.
type ReferenceData interface {
	Locations() ([]refdata.Location, error)
	Categories() []refdata.Category
	ResolveLocation(query string) (refdata.Location, error)
}

// SearchService runs aggregated vendor searches.
type SearchService interface {
	SearchAllVendors(ctx context.Context, query string, loc refdata.Location, opts searchservice.Options) searchservice.SearchResult
}

// VendorService fetches a single vendor's details.
type VendorService interface {
	VendorDetails(ctx context.Context, vendorID string, loc refdata.Location) (*placesapi.Vendor, error)
}

// ReviewStore lists and appends vendor reviews.
type ReviewStore interface {
	List(vendorID string) []reviews.Review
	Add(vendorID string, review reviews.Review) reviews.Review
}

// RegistrationService accepts vendor registration submissions.
type RegistrationService interface {
	Submit(sub registration.Submission) (*registration.Registration, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	refData       ReferenceData
	search        SearchService
	vendors       VendorService
	reviews       ReviewStore
	registrations RegistrationService
}

// New configures a Server over the given services.
func New(
	refData ReferenceData,
	search SearchService,
	vendors VendorService,
	reviewStore ReviewStore,
	registrations RegistrationService,
) *Server {
	return &Server{
		refData:       refData,
		search:        search,
		vendors:       vendors,
		reviews:       reviewStore,
		registrations: registrations,
	}
}

// Routes exposes the JSON API handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/locations", s.handleLocations)
	mux.HandleFunc("GET /api/categories", s.handleCategories)

	mux.HandleFunc("GET /api/vendors", s.handleSearchVendors)
	mux.HandleFunc("POST /api/vendors/register", s.handleRegister)
	mux.HandleFunc("GET /api/vendors/{id}", s.handleVendor)
	mux.HandleFunc("GET /api/vendors/{id}/reviews", s.handleListReviews)
	mux.HandleFunc("POST /api/vendors/{id}/reviews", s.handleAddReview)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	locations, err := s.refData.Locations()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load locations"})
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.refData.Categories())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
