package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingdir/internal/placesapi"
	"weddingdir/internal/refdata"
	"weddingdir/internal/reviews"
	"weddingdir/internal/searchservice"
)

type stubSearch struct {
	lastQuery    string
	lastCategory string
	result       searchservice.SearchResult
}

func (s *stubSearch) SearchAllVendors(_ context.Context, query string, _ refdata.Location, opts searchservice.Options) searchservice.SearchResult {
	s.lastQuery = query
	s.lastCategory = opts.Category
	return s.result
}

func (s *stubSearch) SearchVendorsByCategory(ctx context.Context, category string, loc refdata.Location, opts searchservice.Options) searchservice.SearchResult {
	opts.Category = category
	return s.SearchAllVendors(ctx, "", loc, opts)
}

type stubVendors struct {
	vendor *placesapi.Vendor
	err    error
}

func (s *stubVendors) VendorDetails(context.Context, string, refdata.Location) (*placesapi.Vendor, error) {
	return s.vendor, s.err
}

func sampleResult() searchservice.SearchResult {
	return searchservice.SearchResult{
		Vendors: []placesapi.Vendor{
			{ID: "v-1", Name: "Bloom & Co", Category: "Florists", Rating: 4.7, ReviewCount: 32, Description: "Seasonal arrangements."},
			{ID: "v-2", Name: "Golden Hour Photos", Category: "Wedding Photographers", Rating: 4.9, ReviewCount: 80, Description: "Candid photography."},
		},
		Total:     2,
		Page:      1,
		PageSize:  itemsPerPage,
		PageCount: 1,
		Source:    placesapi.SourceProvider,
	}
}

func newTestServer(t *testing.T, search SearchService, vendors VendorService) (*Server, *refdata.Provider) {
	t.Helper()
	refData := refdata.New("")
	srv := New(refData, search, vendors, reviews.NewStore(), t.TempDir(), "https://weddingvendors.example", zerolog.Nop())
	return srv, refData
}

func TestHomePage(t *testing.T) {
	srv, refData := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, SiteName)
	for _, cat := range refData.Categories() {
		assert.Contains(t, body, "/categories/"+cat.Slug)
	}
	assert.Contains(t, body, "/ny/new-york")
}

func TestLocationsPage(t *testing.T) {
	srv, refData := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	locations, err := refData.Locations()
	require.NoError(t, err)
	for _, loc := range locations {
		assert.Contains(t, rec.Body.String(), loc.City)
	}
}

func TestCategoryPage(t *testing.T) {
	srv, refData := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	cat := refData.Categories()[0]
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories/"+cat.Slug, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), cat.Name)
}

func TestCategoryPageUnknownSlug(t *testing.T) {
	srv, _ := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories/submarines", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

func TestCityPage(t *testing.T) {
	search := &stubSearch{result: sampleResult()}
	srv, _ := newTestServer(t, search, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ny/new-york", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Wedding Vendors in New York, New York")
	assert.Contains(t, body, "Bloom &amp; Co")
	assert.Contains(t, body, "Golden Hour Photos")
}

func TestCityPageUnknownCity(t *testing.T) {
	srv, _ := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zz/atlantis", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCityCategoryPage(t *testing.T) {
	search := &stubSearch{result: sampleResult()}
	srv, refData := newTestServer(t, search, &stubVendors{})

	cat, err := refData.CategoryBySlug("florist")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ny/new-york/"+cat.Slug, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), cat.Name+" in New York, New York")
	assert.Equal(t, cat.Name, search.lastCategory)
}

func TestCityCategoryPageUnknownCategory(t *testing.T) {
	srv, _ := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ny/new-york/submarines", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchPageWithLocation(t *testing.T) {
	search := &stubSearch{result: sampleResult()}
	srv, _ := newTestServer(t, search, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=florist&location=New+York,+NY", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "florist", search.lastQuery)
	assert.Contains(t, rec.Body.String(), "2 vendors found")
}

func TestSearchPageUnknownLocation(t *testing.T) {
	srv, _ := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?location=Atlantis", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "couldn&#39;t find")
}

func TestSearchPageWithoutLocation(t *testing.T) {
	search := &stubSearch{result: sampleResult()}
	srv, _ := newTestServer(t, search, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, search.lastQuery)
	assert.NotContains(t, rec.Body.String(), "vendors found")
}

func TestSearchPageFallbackNotice(t *testing.T) {
	result := sampleResult()
	result.Source = placesapi.SourceFallback
	srv, _ := newTestServer(t, &stubSearch{result: result}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?location=New+York", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sample listings")
}

func TestVendorPage(t *testing.T) {
	vendor := &placesapi.Vendor{
		ID:          "abc",
		Name:        "Grand Ballroom",
		Category:    "Wedding Venues",
		Rating:      4.8,
		ReviewCount: 120,
		Description: "A historic venue downtown.",
		Phone:       "(555) 867-5309",
	}
	srv, _ := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{vendor: vendor})

	store := reviews.NewStore()
	store.Add("abc", reviews.Review{Rating: 5, Text: "Stunning space.", Author: "Dana"})
	srv.reviews = store

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vendor/abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Grand Ballroom")
	assert.Contains(t, body, "Stunning space.")
	assert.Contains(t, body, "Dana")
}

func TestVendorPageNotFound(t *testing.T) {
	srv, _ := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{err: placesapi.ErrVendorNotFound})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vendor/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterFormPage(t *testing.T) {
	srv, refData := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vendors/register", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/api/vendors/register"`)
	assert.Contains(t, body, `name="businessHours"`)
	for _, day := range weekDays {
		assert.Contains(t, body, day)
	}
	assert.Contains(t, body, refData.Categories()[0].Name)
}

func TestUploadsFileServer(t *testing.T) {
	srv, _ := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/missing.jpg", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAllTemplatesRender(t *testing.T) {
	srv, _ := newTestServer(t, &stubSearch{result: sampleResult()}, &stubVendors{})

	for _, name := range []string{"notfound.html", "error.html"} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.render(rec, http.StatusOK, name, "Title", "", nil)
			assert.NotEmpty(t, rec.Body.String())
			assert.Contains(t, rec.Body.String(), "</html>")
		})
	}
}
