package services

import (
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
)

// CountryRegions maps an ISO country code to a shipping region.
type CountryRegions interface {
	CountryToRegion(country string) kernel.Region
}

// RegionPartitioner filters loaded orders by the region of their frozen address.
// It runs after the store query because regions are derived from the address
// snapshot, which the store cannot index.
type RegionPartitioner struct {
	regions CountryRegions
}

func NewRegionPartitioner(regions CountryRegions) RegionPartitioner {
	return RegionPartitioner{regions: regions}
}

// EffectiveRegion returns the region a listing is restricted to, or "" for none.
// A caller bound to a region always gets that region regardless of the request.
func EffectiveRegion(caller staff.Caller, requested string) kernel.Region {
	if bound, ok := caller.BoundRegion(); ok {
		return kernel.Region(bound)
	}
	return kernel.Region(strings.ToUpper(strings.TrimSpace(requested)))
}

// Filter keeps the orders whose frozen address resolves to region, preserving
// order. An empty region keeps everything; orders without an address never
// match a non-empty region.
func (p RegionPartitioner) Filter(orders []*order.Order, region kernel.Region) []*order.Order {
	if region == "" {
		return orders
	}

	matched := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		addr := o.FrozenAddress()
		if addr == nil {
			continue
		}
		if p.regions.CountryToRegion(addr.Country()) == region {
			matched = append(matched, o)
		}
	}
	return matched
}
