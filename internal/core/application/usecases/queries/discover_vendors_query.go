// Package queries contains read-only operations for retrieving system state.
// Implements the query side of the CQRS architecture: handlers read projections
// straight from the database and never mutate aggregates.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDiscoverVendorsQueryIsNotConstructed = errors.New(
	"DiscoverVendorsQuery must be created via NewDiscoverVendorsQuery constructor",
)

// DiscoverVendorsQuery searches for vendors around a customer position.
// The origin is optional: without one the search cannot rank by distance
// and returns nothing.
type DiscoverVendorsQuery struct { //nolint:recvcheck //using for validation
	origin     *kernel.GeoPoint
	radiusKm   float64
	category   string
	onlineOnly bool
	queryText  string

	guard guard.ConstructorGuard
}

// NewDiscoverVendorsQuery creates a discovery search.
// The radius is in kilometres and must not be negative. An empty category
// means all categories; an empty query text means no text filtering.
func NewDiscoverVendorsQuery(
	origin *kernel.GeoPoint,
	radiusKm float64,
	category string,
	onlineOnly bool,
	queryText string,
) (DiscoverVendorsQuery, error) {
	if radiusKm < 0 {
		return DiscoverVendorsQuery{}, errs.NewValueIsInvalidError("radiusKm")
	}

	q := DiscoverVendorsQuery{
		radiusKm:   radiusKm,
		category:   category,
		onlineOnly: onlineOnly,
		queryText:  queryText,
		guard:      guard.NewConstructorGuard(),
	}

	if origin != nil {
		if err := origin.Validate(); err != nil {
			return DiscoverVendorsQuery{}, err
		}
		point := *origin
		q.origin = &point
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q DiscoverVendorsQuery) Validate() error {
	return q.guard.Validate(ErrDiscoverVendorsQueryIsNotConstructed)
}

// Origin returns the customer position, or nil if none was given.
func (q DiscoverVendorsQuery) Origin() *kernel.GeoPoint {
	return q.origin
}

// RadiusKm returns the search radius in kilometres.
func (q DiscoverVendorsQuery) RadiusKm() float64 {
	return q.radiusKm
}

// Category returns the category filter, empty for all categories.
func (q DiscoverVendorsQuery) Category() string {
	return q.category
}

// OnlineOnly reports whether offline vendors should be excluded.
func (q DiscoverVendorsQuery) OnlineOnly() bool {
	return q.onlineOnly
}

// QueryText returns the free-text filter, possibly empty.
func (q DiscoverVendorsQuery) QueryText() string {
	return q.queryText
}

// DiscoverVendorsQueryResponse is one vendor in the discovery result,
// ordered nearest first.
type DiscoverVendorsQueryResponse struct {
	VendorID     kernel.UUID
	Name         string
	Category     string
	VendorType   string
	Online       bool
	OpeningNote  string
	Latitude     float64
	Longitude    float64
	DistanceKm   float64
	UpdatedToday bool
}
