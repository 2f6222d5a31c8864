package placesapi

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"weddingdir/internal/refdata"
)

const fallbackCount = 6

// fallbackPage builds the synthetic vendors served when the provider is
// unreachable. Names and ids are deterministic so pages stay stable;
// ratings and review counts are jittered to read like real listings.
func fallbackPage(keyword string, loc refdata.Location) VendorPage {
	vendors := make([]Vendor, 0, fallbackCount)
	for i := 0; i < fallbackCount; i++ {
		vendors = append(vendors, Vendor{
			ID:            fmt.Sprintf("mock-%d", i),
			Name:          fmt.Sprintf("%s Business %d", keyword, i+1),
			Category:      keyword,
			Location:      loc,
			Rating:        4.5 + rand.Float64()*0.5,
			ReviewCount:   10 + rand.IntN(50),
			Phone:         "(555) 123-4567",
			Website:       "https://example.com",
			Address:       loc.Display(),
			Description:   fmt.Sprintf("Professional %s in %s", strings.ToLower(keyword), loc.City),
			Images:        []string{placeholderImage},
			BusinessHours: defaultBusinessHours(),
			PriceRange:    defaultPriceRange,
		})
	}
	return VendorPage{Vendors: vendors, Total: len(vendors), Source: SourceFallback}
}
