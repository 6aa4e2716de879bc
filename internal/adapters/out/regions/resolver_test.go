package regions_test

import (
	"testing"

	"fulfillment/internal/adapters/out/regions"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestStaticResolver_CountryToRegion(t *testing.T) {
	resolver := regions.NewStaticResolver(map[string]kernel.Region{"ch": kernel.RegionEU, "GB": kernel.RegionEU})

	tests := []struct {
		country  string
		expected kernel.Region
	}{
		{"US", kernel.RegionUS},
		{"de", kernel.RegionEU},
		{" fr ", kernel.RegionEU},
		{"IN", kernel.RegionIN},
		{"CA", kernel.RegionCA},
		{"AU", kernel.RegionAU},
		{"CH", kernel.RegionEU},
		{"GB", kernel.RegionEU},
		{"BR", kernel.RegionOther},
		{"", kernel.RegionOther},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.CountryToRegion(tt.country))
		})
	}
}
