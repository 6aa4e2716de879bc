// Package regions maps ISO 3166-1 alpha-2 country codes to shipping regions.
package regions

import (
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
)

var euCountries = []string{
	"AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "ES", "FI", "FR", "GR", "HR", "HU",
	"IE", "IT", "LT", "LU", "LV", "MT", "NL", "PL", "PT", "RO", "SE", "SI", "SK",
}

// StaticResolver implements ports.RegionResolver from a fixed table.
type StaticResolver struct {
	table map[string]kernel.Region
}

// NewStaticResolver builds the default table. Overrides replace or extend it,
// keyed by country code.
func NewStaticResolver(overrides map[string]kernel.Region) StaticResolver {
	table := map[string]kernel.Region{
		"US": kernel.RegionUS,
		"PR": kernel.RegionUS,
		"GB": kernel.RegionUK,
		"UK": kernel.RegionUK,
		"IN": kernel.RegionIN,
		"CA": kernel.RegionCA,
		"AU": kernel.RegionAU,
	}
	for _, c := range euCountries {
		table[c] = kernel.RegionEU
	}
	for country, region := range overrides {
		table[strings.ToUpper(strings.TrimSpace(country))] = region
	}
	return StaticResolver{table: table}
}

// CountryToRegion is case-insensitive; unknown and empty codes map to
// kernel.RegionOther.
func (r StaticResolver) CountryToRegion(country string) kernel.Region {
	if region, ok := r.table[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return region
	}
	return kernel.RegionOther
}
