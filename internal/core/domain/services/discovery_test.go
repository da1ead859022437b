package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorAt(t *testing.T, name, category string, lat, lng float64, online bool) *vendor.Vendor {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)

	v, err := vendor.NewVendor(
		kernel.NewUUID(), kernel.NewUUID(),
		name, category, vendor.TypeMovingStall, "+919800000000", &point,
	)
	require.NoError(t, err)
	v.SetOnline(online)
	return v
}

func newVendorWithoutLocation(t *testing.T, name string) *vendor.Vendor {
	t.Helper()

	v, err := vendor.NewVendor(
		kernel.NewUUID(), kernel.NewUUID(),
		name, "Grocery", vendor.TypeFixedShop, "+919800000000", nil,
	)
	require.NoError(t, err)
	v.SetOnline(true)
	return v
}

func bengaluruOrigin(t *testing.T) *kernel.GeoPoint {
	t.Helper()

	origin, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	return &origin
}

func TestVendorDiscovery_Discover(t *testing.T) {
	discovery := services.NewVendorDiscovery()

	t.Run("nil origin yields empty result regardless of vendors", func(t *testing.T) {
		vendors := []*vendor.Vendor{
			newVendorAt(t, "A", "Fruit & Veg", 12.9716, 77.5946, true),
		}

		result := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:   nil,
			RadiusKm: 100,
		})

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("vendor without location is excluded", func(t *testing.T) {
		vendors := []*vendor.Vendor{
			newVendorWithoutLocation(t, "No GPS"),
			newVendorAt(t, "A", "Fruit & Veg", 12.9716, 77.5946, true),
		}

		result := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:   bengaluruOrigin(t),
			RadiusKm: 10,
		})

		require.Len(t, result, 1)
		assert.Equal(t, "A", result[0].Vendor.Name())
	})

	t.Run("bengaluru scenario from the field", func(t *testing.T) {
		// A at the origin, B in Chennai roughly 290 km away.
		vendorA := newVendorAt(t, "A", "Fruit & Veg", 12.9716, 77.5946, true)
		vendorB := newVendorAt(t, "B", "Fruit & Veg", 13.0827, 80.2707, true)
		vendors := []*vendor.Vendor{vendorB, vendorA}

		narrow := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:   bengaluruOrigin(t),
			RadiusKm: 10,
		})
		require.Len(t, narrow, 1)
		assert.Equal(t, "A", narrow[0].Vendor.Name())
		assert.InDelta(t, 0, narrow[0].DistanceKm, 1e-9)

		wide := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:   bengaluruOrigin(t),
			RadiusKm: 300,
		})
		require.Len(t, wide, 2)
		assert.Equal(t, "A", wide[0].Vendor.Name())
		assert.Equal(t, "B", wide[1].Vendor.Name())
		assert.InDelta(t, 290, wide[1].DistanceKm, 10)
	})

	t.Run("radius boundary is inclusive", func(t *testing.T) {
		origin := bengaluruOrigin(t)
		target := newVendorAt(t, "Edge", "Grocery", 13.0827, 80.2707, true)

		exact, err := origin.DistanceKm(*target.Location())
		require.NoError(t, err)

		included := discovery.Discover([]*vendor.Vendor{target}, services.DiscoveryCriteria{
			Origin:   origin,
			RadiusKm: exact,
		})
		assert.Len(t, included, 1)

		excluded := discovery.Discover([]*vendor.Vendor{target}, services.DiscoveryCriteria{
			Origin:   origin,
			RadiusKm: exact - 0.001,
		})
		assert.Empty(t, excluded)
	})

	t.Run("zero radius keeps only the identical point", func(t *testing.T) {
		vendors := []*vendor.Vendor{
			newVendorAt(t, "Here", "Grocery", 12.9716, 77.5946, true),
			newVendorAt(t, "Near", "Grocery", 12.9720, 77.5946, true),
		}

		result := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:   bengaluruOrigin(t),
			RadiusKm: 0,
		})

		require.Len(t, result, 1)
		assert.Equal(t, "Here", result[0].Vendor.Name())
	})

	t.Run("category filter is exact match", func(t *testing.T) {
		vendors := []*vendor.Vendor{
			newVendorAt(t, "Fruits", "Fruit & Veg", 12.9716, 77.5946, true),
			newVendorAt(t, "Tea", "Snacks & Tea", 12.9717, 77.5946, true),
		}

		result := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:   bengaluruOrigin(t),
			RadiusKm: 5,
			Category: "Fruit & Veg",
		})

		require.Len(t, result, 1)
		assert.Equal(t, "Fruits", result[0].Vendor.Name())
	})

	t.Run("online only filter", func(t *testing.T) {
		vendors := []*vendor.Vendor{
			newVendorAt(t, "Open", "Grocery", 12.9716, 77.5946, true),
			newVendorAt(t, "Closed", "Grocery", 12.9717, 77.5946, false),
		}

		result := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:     bengaluruOrigin(t),
			RadiusKm:   5,
			OnlineOnly: true,
		})

		require.Len(t, result, 1)
		assert.Equal(t, "Open", result[0].Vendor.Name())
	})

	t.Run("all offline with online only yields empty", func(t *testing.T) {
		vendors := []*vendor.Vendor{
			newVendorAt(t, "Closed A", "Grocery", 12.9716, 77.5946, false),
			newVendorAt(t, "Closed B", "Grocery", 12.9717, 77.5946, false),
		}

		result := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:     bengaluruOrigin(t),
			RadiusKm:   5,
			OnlineOnly: true,
		})

		assert.Empty(t, result)
	})

	t.Run("text filter matches name category and opening note", func(t *testing.T) {
		byName := newVendorAt(t, "Lakshmi Fruits", "Fruit & Veg", 12.9716, 77.5946, true)
		byNote := newVendorAt(t, "Corner Cart", "Grocery", 12.9717, 77.5946, true)
		byNote.SetOpeningNote("Fresh mangoes till 6pm")
		miss := newVendorAt(t, "Tea Stall", "Snacks & Tea", 12.9718, 77.5946, true)
		vendors := []*vendor.Vendor{byName, byNote, miss}

		result := discovery.Discover(vendors, services.DiscoveryCriteria{
			Origin:    bengaluruOrigin(t),
			RadiusKm:  5,
			QueryText: "FRUIT",
		})

		require.Len(t, result, 2)
		names := []string{result[0].Vendor.Name(), result[1].Vendor.Name()}
		assert.Contains(t, names, "Lakshmi Fruits")
		assert.NotContains(t, names, "Tea Stall")
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		// Offline vendor matching the text query must stay excluded.
		offline := newVendorAt(t, "Lakshmi Fruits", "Fruit & Veg", 12.9716, 77.5946, false)

		result := discovery.Discover([]*vendor.Vendor{offline}, services.DiscoveryCriteria{
			Origin:     bengaluruOrigin(t),
			RadiusKm:   5,
			OnlineOnly: true,
			QueryText:  "fruits",
		})

		assert.Empty(t, result)
	})

	t.Run("results sorted ascending by distance", func(t *testing.T) {
		far := newVendorAt(t, "Far", "Grocery", 13.01, 77.5946, true)
		near := newVendorAt(t, "Near", "Grocery", 12.9720, 77.5946, true)
		middle := newVendorAt(t, "Middle", "Grocery", 12.99, 77.5946, true)

		result := discovery.Discover([]*vendor.Vendor{far, near, middle}, services.DiscoveryCriteria{
			Origin:   bengaluruOrigin(t),
			RadiusKm: 50,
		})

		require.Len(t, result, 3)
		assert.Equal(t, "Near", result[0].Vendor.Name())
		assert.Equal(t, "Middle", result[1].Vendor.Name())
		assert.Equal(t, "Far", result[2].Vendor.Name())
		assert.LessOrEqual(t, result[0].DistanceKm, result[1].DistanceKm)
		assert.LessOrEqual(t, result[1].DistanceKm, result[2].DistanceKm)
	})

	t.Run("empty vendor list yields empty result", func(t *testing.T) {
		result := discovery.Discover(nil, services.DiscoveryCriteria{
			Origin:   bengaluruOrigin(t),
			RadiusKm: 5,
		})

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestVendorDiscovery_Freshness(t *testing.T) {
	t.Run("updated today flag derives from the clock", func(t *testing.T) {
		now := time.Now().UTC()
		point, _ := kernel.NewGeoPoint(12.9716, 77.5946)

		fresh := newVendorAt(t, "Fresh", "Grocery", 12.9716, 77.5946, true)
		require.NoError(t, fresh.UpdateLocation(point, now.Add(-time.Hour)))

		stale := newVendorAt(t, "Stale", "Grocery", 12.9717, 77.5946, true)
		require.NoError(t, stale.UpdateLocation(point, now.Add(-36*time.Hour)))

		discovery := services.NewVendorDiscoveryWithClock(func() time.Time { return now })
		result := discovery.Discover([]*vendor.Vendor{fresh, stale}, services.DiscoveryCriteria{
			Origin:   bengaluruOrigin(t),
			RadiusKm: 5,
		})

		require.Len(t, result, 2)
		for _, dv := range result {
			switch dv.Vendor.Name() {
			case "Fresh":
				assert.True(t, dv.UpdatedToday)
			case "Stale":
				assert.False(t, dv.UpdatedToday)
			}
		}
	})
}
