package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"weddingdir/internal/httpapi"
	"weddingdir/internal/logging"
	"weddingdir/internal/placesapi"
	"weddingdir/internal/refdata"
	"weddingdir/internal/registration"
	"weddingdir/internal/reviews"
	"weddingdir/internal/searchservice"
	"weddingdir/internal/web"
)

func newHTTPHandler(cfg Config, log zerolog.Logger) http.Handler {
	refData := refdata.New(cfg.DataDir)

	searcher := placesapi.NewSearcher(newPlacesClient(cfg, log), log)
	searchSvc := searchservice.New(searcher)
	reviewStore := reviews.NewStore()
	registrationSvc := registration.New(cfg.UploadDir, log)

	apiServer := httpapi.New(refData, searchSvc, searcher, reviewStore, registrationSvc)
	webServer := web.New(refData, searchSvc, searcher, reviewStore, cfg.UploadDir, cfg.SiteURL, log)

	apiRoutes := apiServer.Routes()
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRoutes)
	mux.Handle("/health", apiRoutes)
	mux.Handle("/", webServer.Routes())

	handler := withCORS(cfg.AllowedOrigins, mux)
	handler = logging.RequestLogging(log)(handler)
	handler = logging.Recovery(log)(handler)
	return handler
}

func newPlacesClient(cfg Config, log zerolog.Logger) placesapi.Client {
	if cfg.DataForSEOLogin == "" || cfg.DataForSEOPassword == "" {
		log.Warn().Msg("places provider credentials not set, serving fallback vendor data")
		return unavailableClient{}
	}
	return placesapi.NewDataForSEO(cfg.DataForSEOLogin, cfg.DataForSEOPassword, cfg.DataForSEOTimeout)
}

// unavailableClient stands in when no provider credentials are
// configured; every call errors so the searcher serves fallback data.
type unavailableClient struct{}

func (unavailableClient) SearchBusinesses(context.Context, placesapi.SearchRequest) ([]placesapi.BusinessItem, error) {
	return nil, errors.New("places provider not configured")
}

func (unavailableClient) BusinessByID(context.Context, string) (*placesapi.BusinessItem, error) {
	return nil, errors.New("places provider not configured")
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
