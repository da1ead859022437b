package services

import (
	"sort"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = ""

// DiscoveryCriteria describes the customer's view of the vendor map:
// where they are, how far they are willing to walk, and which vendors
// they care about.
//
// A nil Origin is valid and yields an empty result; discovery is
// impossible without a position, and returning nothing forces the UI
// into an explicit location opt-in rather than a confusing default.
type DiscoveryCriteria struct {
	// Origin is the customer's position. Nil means no position available.
	Origin *kernel.GeoPoint

	// RadiusKm is the inclusive search radius in kilometers.
	RadiusKm float64

	// Category filters on exact category match. CategoryAll disables the filter.
	Category string

	// OnlineOnly keeps only vendors currently taking orders.
	OnlineOnly bool

	// QueryText is a case-insensitive substring matched against the
	// vendor's name, category, and opening note. Empty disables the filter.
	QueryText string
}

// DiscoveredVendor is a vendor that passed all filters, annotated with the
// computed distance from the origin and the derived location freshness.
type DiscoveredVendor struct {
	Vendor       *vendor.Vendor
	DistanceKm   float64
	UpdatedToday bool
}

// VendorDiscovery is a domain service producing the customer-facing vendor
// list: distance computation, conjunctive filtering, and ascending sort by
// distance. It is a pure pipeline over already-materialized vendor lists;
// it performs no I/O and holds no state beyond the clock.
//
// Filters form an unordered conjunction: the order they are applied in
// never changes the result set. The sort is stable, so equidistant vendors
// keep their fetch order.
type VendorDiscovery struct {
	now func() time.Time
}

// NewVendorDiscovery creates a discovery service using the wall clock
// for freshness derivation.
func NewVendorDiscovery() VendorDiscovery {
	return VendorDiscovery{now: time.Now}
}

// NewVendorDiscoveryWithClock creates a discovery service with an injected
// clock. Used by tests that need deterministic freshness.
func NewVendorDiscoveryWithClock(now func() time.Time) VendorDiscovery {
	return VendorDiscovery{now: now}
}

// Discover runs the proximity pipeline over the given vendors.
//
// Steps:
//  1. A nil origin yields an empty result.
//  2. Vendors without a reported position are discarded.
//  3. Great-circle distance from the origin is computed per vendor.
//  4. Conjunctive filters: distance ≤ RadiusKm (inclusive boundary),
//     exact category match, online flag, case-insensitive substring.
//  5. Stable ascending sort by distance.
//
// The returned slice is never nil.
func (d VendorDiscovery) Discover(vendors []*vendor.Vendor, criteria DiscoveryCriteria) []DiscoveredVendor {
	result := make([]DiscoveredVendor, 0, len(vendors))
	if criteria.Origin == nil {
		return result
	}

	origin := *criteria.Origin
	now := d.now()
	query := strings.ToLower(criteria.QueryText)

	for _, v := range vendors {
		if v == nil || !v.HasLocation() {
			continue
		}

		distance, err := origin.DistanceKm(*v.Location())
		if err != nil {
			continue
		}

		if distance > criteria.RadiusKm {
			continue
		}
		if criteria.Category != CategoryAll && v.Category() != criteria.Category {
			continue
		}
		if criteria.OnlineOnly && !v.IsOnline() {
			continue
		}
		if query != "" && !matchesQuery(v, query) {
			continue
		}

		result = append(result, DiscoveredVendor{
			Vendor:       v,
			DistanceKm:   distance,
			UpdatedToday: v.LocationFresh(now),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result
}

// matchesQuery checks the lowercased query against name, category, and
// opening note.
func matchesQuery(v *vendor.Vendor, loweredQuery string) bool {
	haystack := strings.ToLower(v.Name() + " " + v.Category() + " " + v.OpeningNote())
	return strings.Contains(haystack, loweredQuery)
}
