package kernel_test

import (
	"math"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(12.9716, 77.5946)

		require.NoError(t, err)
		assert.InDelta(t, 12.9716, point.Latitude(), 1e-9)
		assert.InDelta(t, 77.5946, point.Longitude(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"north pole", 90, 0},
			{"south pole", -90, 0},
			{"antimeridian east", 0, 180},
			{"antimeridian west", 0, -180},
			{"null island", 0, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject out of range coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"latitude too high", 90.0001, 0},
			{"latitude too low", -90.0001, 0},
			{"longitude too high", 0, 180.0001},
			{"longitude too low", 0, -180.0001},
			{"latitude NaN", math.NaN(), 0},
			{"longitude NaN", 0, math.NaN()},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		b, _ := kernel.NewGeoPoint(12.9716, 77.5946)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		b, _ := kernel.NewGeoPoint(13.0827, 80.2707)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("zero value point fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		var b kernel.GeoPoint

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(12.9716, 77.5946)

		d, err := point.DistanceKm(point)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		bengaluru, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		chennai, _ := kernel.NewGeoPoint(13.0827, 80.2707)

		there, err := bengaluru.DistanceKm(chennai)
		require.NoError(t, err)
		back, err := chennai.DistanceKm(bengaluru)
		require.NoError(t, err)

		assert.InDelta(t, there, back, 1e-9)
	})

	t.Run("bengaluru to chennai is roughly 290 km", func(t *testing.T) {
		bengaluru, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		chennai, _ := kernel.NewGeoPoint(13.0827, 80.2707)

		d, err := bengaluru.DistanceKm(chennai)

		require.NoError(t, err)
		assert.InDelta(t, 290, d, 10)
	})

	t.Run("antipodal points stay finite", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(0, 0)
		b, _ := kernel.NewGeoPoint(0, 180)

		d, err := a.DistanceKm(b)

		require.NoError(t, err)
		assert.False(t, math.IsNaN(d))
		assert.InDelta(t, math.Pi*kernel.EarthRadiusKm, d, 1)
	})

	t.Run("zero value point fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(12.9716, 77.5946)
		var b kernel.GeoPoint

		_, err := a.DistanceKm(b)

		require.Error(t, err)
	})
}
