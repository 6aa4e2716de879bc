package kernel

import (
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Region is a coarse shipping region. RegionOther covers every country without
// a dedicated region.
type Region string

const (
	RegionUS    Region = "US"
	RegionEU    Region = "EU"
	RegionUK    Region = "UK"
	RegionIN    Region = "IN"
	RegionCA    Region = "CA"
	RegionAU    Region = "AU"
	RegionOther Region = "XX"
)

func AllRegions() []Region {
	return []Region{RegionUS, RegionEU, RegionUK, RegionIN, RegionCA, RegionAU, RegionOther}
}

// ParseRegion is case-insensitive.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(AllRegions(), r) {
		return "", errs.NewValueIsInvalidErrorWithCause("region", fmt.Errorf("%q is not a known region", s))
	}
	return r, nil
}
