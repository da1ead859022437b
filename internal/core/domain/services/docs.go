// Package services contains stateless domain services that coordinate
// behavior across aggregates. VendorDiscovery builds the customer-facing
// vendor list from proximity and attribute filters.
package services
