// Package web renders the directory's HTML pages: location and category
// browsing, vendor search and details, and the registration form.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"weddingdir/internal/placesapi"
	"weddingdir/internal/refdata"
	"weddingdir/internal/reviews"
	"weddingdir/internal/searchservice"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	// SiteName is the public name of the directory.
	SiteName = "Wedding Vendors Directory"
	// SiteDescription is the tagline used on the home page.
	SiteDescription = "Find and connect with trusted wedding vendors in your area"

	// itemsPerPage is the vendor page size for rendered listings.
	itemsPerPage = 12
	// majorCityPopulation is the pre-render cutoff: only cities above it
	// get static city and city+category pages.
	majorCityPopulation = 100000
)

// SearchService runs aggregated vendor searches for page rendering.
type SearchService interface {
	SearchAllVendors(ctx context.Context, query string, loc refdata.Location, opts searchservice.Options) searchservice.SearchResult
	SearchVendorsByCategory(ctx context.Context, category string, loc refdata.Location, opts searchservice.Options) searchservice.SearchResult
}

// VendorService fetches a single vendor for the detail page.
type VendorService interface {
	VendorDetails(ctx context.Context, vendorID string, loc refdata.Location) (*placesapi.Vendor, error)
}

// ReviewStore lists a vendor's reviews for the detail page.
type ReviewStore interface {
	List(vendorID string) []reviews.Review
}

// Server renders the HTML site.
type Server struct {
	refData   *refdata.Provider
	search    SearchService
	vendors   VendorService
	reviews   ReviewStore
	uploadDir string
	siteURL   string
	log       zerolog.Logger
	tmpl      *template.Template
}

// New parses the embedded templates and returns a page server.
// uploadDir is served under /uploads/; siteURL prefixes sitemap entries.
func New(refData *refdata.Provider, search SearchService, vendors VendorService, reviewStore ReviewStore, uploadDir, siteURL string, log zerolog.Logger) *Server {
	funcs := template.FuncMap{
		"lower":    strings.ToLower,
		"citySlug": refdata.CitySlug,
		"stars": func(rating any) string {
			var value float64
			switch r := rating.(type) {
			case int:
				value = float64(r)
			case float64:
				value = r
			}
			full := int(value + 0.5)
			if full < 0 {
				full = 0
			}
			if full > 5 {
				full = 5
			}
			return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
		},
	}
	return &Server{
		refData:   refData,
		search:    search,
		vendors:   vendors,
		reviews:   reviewStore,
		uploadDir: uploadDir,
		siteURL:   strings.TrimSuffix(siteURL, "/"),
		log:       log,
		tmpl:      template.Must(template.New("site").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")),
	}
}

// Routes exposes the page handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /locations", s.handleLocations)
	mux.HandleFunc("GET /categories", s.handleCategories)
	mux.HandleFunc("GET /categories/{slug}", s.handleCategory)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /vendor/{id}", s.handleVendor)
	mux.HandleFunc("GET /vendors/register", s.handleRegisterForm)
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /{state}/{city}", s.handleCity)
	mux.HandleFunc("GET /{state}/{city}/{category}", s.handleCityCategory)

	mux.Handle("GET /uploads/{file}", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadDir))))

	return mux
}

// page is the data every template receives.
type page struct {
	SiteName    string
	Title       string
	Description string
	Data        any
}

func (s *Server) render(w http.ResponseWriter, status int, name, title, description string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := s.tmpl.ExecuteTemplate(w, name, page{
		SiteName:    SiteName,
		Title:       title,
		Description: description,
		Data:        data,
	})
	if err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("template render failed")
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	s.render(w, http.StatusNotFound, "notfound.html", "Page Not Found", "", nil)
}

func (s *Server) renderError(w http.ResponseWriter) {
	s.render(w, http.StatusInternalServerError, "error.html", "Something Went Wrong", "", nil)
}
