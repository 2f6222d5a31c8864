package searchservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingdir/internal/placesapi"
	"weddingdir/internal/refdata"
)

// pagedSearcher serves the first Depth vendors of a fixed pool, like a
// provider that honors depth but knows nothing about offsets.
type pagedSearcher struct {
	pool        []placesapi.Vendor
	lastKeyword string
	lastOpts    placesapi.SearchOptions
}

func (p *pagedSearcher) SearchVendors(_ context.Context, keyword string, _ refdata.Location, opts placesapi.SearchOptions) placesapi.VendorPage {
	p.lastKeyword = keyword
	p.lastOpts = opts

	depth := opts.Offset + opts.Limit
	vendors := p.pool
	if depth < len(vendors) {
		vendors = vendors[:depth]
	}
	return placesapi.VendorPage{Vendors: vendors, Total: len(vendors), Source: placesapi.SourceProvider}
}

func vendorPool(n int) []placesapi.Vendor {
	pool := make([]placesapi.Vendor, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, placesapi.Vendor{ID: fmt.Sprintf("v-%d", i), Name: fmt.Sprintf("Vendor %d", i)})
	}
	return pool
}

func newYork() refdata.Location {
	return refdata.Location{City: "New York", CityASCII: "New York", StateID: "NY", StateName: "New York"}
}

func TestSearchAllVendorsComposesCategoryKeyword(t *testing.T) {
	searcher := &pagedSearcher{}
	svc := New(searcher)

	svc.SearchAllVendors(context.Background(), "", newYork(), Options{Category: "florist"})
	assert.Equal(t, "florist", searcher.lastKeyword, "empty query must not leave trailing whitespace")

	svc.SearchAllVendors(context.Background(), "rooftop", newYork(), Options{Category: "wedding venue"})
	assert.Equal(t, "wedding venue rooftop", searcher.lastKeyword, "category comes first")

	svc.SearchAllVendors(context.Background(), "rooftop", newYork(), Options{})
	assert.Equal(t, "rooftop", searcher.lastKeyword)
}

func TestSearchAllVendorsPaginationInvariants(t *testing.T) {
	searcher := &pagedSearcher{pool: vendorPool(47)}
	svc := New(searcher)

	for page := 1; page <= 5; page++ {
		result := svc.SearchAllVendors(context.Background(), "dj", newYork(), Options{Page: page, Limit: 10})

		assert.Equal(t, page, result.Page)
		assert.Equal(t, 10, result.PageSize)
		assert.LessOrEqual(t, len(result.Vendors), result.PageSize)
		assert.GreaterOrEqual(t, len(result.Vendors), 0)
		expectedPages := (result.Total + result.PageSize - 1) / result.PageSize
		assert.Equal(t, expectedPages, result.PageCount)
	}
}

func TestSearchAllVendorsPageTwoDiffersFromPageOne(t *testing.T) {
	searcher := &pagedSearcher{pool: vendorPool(50)}
	svc := New(searcher)

	page1 := svc.SearchAllVendors(context.Background(), "band", newYork(), Options{Page: 1, Limit: 20})
	page2 := svc.SearchAllVendors(context.Background(), "band", newYork(), Options{Page: 2, Limit: 20})

	require.Len(t, page1.Vendors, 20)
	require.Len(t, page2.Vendors, 20)
	assert.NotEqual(t, page1.Vendors[0].ID, page2.Vendors[0].ID)
	assert.Equal(t, "v-20", page2.Vendors[0].ID)
}

func TestSearchAllVendorsPastEndOfData(t *testing.T) {
	searcher := &pagedSearcher{pool: vendorPool(3)}
	svc := New(searcher)

	result := svc.SearchAllVendors(context.Background(), "harpist", newYork(), Options{Page: 4, Limit: 20})

	assert.Empty(t, result.Vendors)
	assert.Equal(t, 4, result.Page)
	assert.Equal(t, 20, result.PageSize)
	assert.Equal(t, 1, result.PageCount)
}

func TestSearchAllVendorsDefaults(t *testing.T) {
	searcher := &pagedSearcher{pool: vendorPool(5)}
	svc := New(searcher)

	result := svc.SearchAllVendors(context.Background(), "cake", newYork(), Options{Page: 0, Limit: 0})

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)
	assert.Equal(t, 0, searcher.lastOpts.Offset)
	assert.Equal(t, 20, searcher.lastOpts.Limit)
}

func TestSearchVendorsByCategoryUsesEmptyQuery(t *testing.T) {
	searcher := &pagedSearcher{pool: vendorPool(5)}
	svc := New(searcher)

	result := svc.SearchVendorsByCategory(context.Background(), "officiant", newYork(), Options{Limit: 10})

	assert.Equal(t, "officiant", searcher.lastKeyword)
	assert.Equal(t, 5, result.Total)
}

func TestSearchAllVendorsCategoryFallbackScenario(t *testing.T) {
	// End-to-end through the real searcher: category "florist", empty
	// query, failing provider. The page must hold the six synthetic
	// florist vendors.
	failing := failingClient{}
	svc := New(placesapi.NewSearcher(failing, zerolog.Nop()))

	result := svc.SearchAllVendors(context.Background(), "", newYork(), Options{Category: "florist"})

	assert.Equal(t, placesapi.SourceFallback, result.Source)
	require.Len(t, result.Vendors, 6)
	for i, v := range result.Vendors {
		assert.Equal(t, fmt.Sprintf("florist Business %d", i+1), v.Name)
	}
}

type failingClient struct{}

func (failingClient) SearchBusinesses(context.Context, placesapi.SearchRequest) ([]placesapi.BusinessItem, error) {
	return nil, fmt.Errorf("provider unavailable")
}

func (failingClient) BusinessByID(context.Context, string) (*placesapi.BusinessItem, error) {
	return nil, fmt.Errorf("provider unavailable")
}
