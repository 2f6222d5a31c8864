package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"weddingdir/internal/placesapi"
	"weddingdir/internal/refdata"
	"weddingdir/internal/reviews"
	"weddingdir/internal/searchservice"
)

// handleSearchVendors serves GET /api/vendors: paginated vendor search
// scoped to a resolved location and optional category.
func (s *Server) handleSearchVendors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	locationQuery := query.Get("location")
	if locationQuery == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "location is required"})
		return
	}

	loc, err := s.refData.ResolveLocation(locationQuery)
	if err != nil {
		if errors.Is(err, refdata.ErrLocationNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Location not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to search vendors"})
		return
	}

	result := s.search.SearchAllVendors(r.Context(), query.Get("q"), loc, searchservice.Options{
		Page:     intParam(query.Get("page"), 1),
		Limit:    intParam(query.Get("limit"), 20),
		Category: query.Get("category"),
	})

	writeJSON(w, http.StatusOK, result)
}

// vendorResponse is a Vendor with its recorded reviews attached.
type vendorResponse struct {
	placesapi.Vendor
	Reviews []reviews.Review `json:"reviews"`
}

// handleVendor serves GET /api/vendors/{id}. The optional location
// query parameter scopes the lookup; without it the first reference
// location is used.
func (s *Server) handleVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := r.PathValue("id")

	loc, err := s.lookupLocation(r.URL.Query().Get("location"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch vendor"})
		return
	}

	vendor, err := s.vendors.VendorDetails(r.Context(), vendorID, loc)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Vendor not found"})
		return
	}

	writeJSON(w, http.StatusOK, vendorResponse{
		Vendor:  *vendor,
		Reviews: s.reviews.List(vendorID),
	})
}

func (s *Server) lookupLocation(query string) (refdata.Location, error) {
	if query != "" {
		if loc, err := s.refData.ResolveLocation(query); err == nil {
			return loc, nil
		}
	}
	locations, err := s.refData.Locations()
	if err != nil {
		return refdata.Location{}, err
	}
	if len(locations) == 0 {
		return refdata.Location{}, errors.New("no locations loaded")
	}
	return locations[0], nil
}

// intParam parses a positive integer query parameter, falling back to
// the default on anything unparseable or less than one.
func intParam(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
