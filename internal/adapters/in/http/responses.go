package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
)

// IDResponse acknowledges a creation with the new object's identifier.
type IDResponse struct {
	ID string `json:"id"`
}

// DiscoveredVendor is one entry of the customer discovery feed.
type DiscoveredVendor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	VendorType   string  `json:"vendor_type"`
	Online       bool    `json:"online"`
	OpeningNote  string  `json:"opening_note,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DistanceKm   float64 `json:"distance_km"`
	UpdatedToday bool    `json:"updated_today"`
}

func toDiscoveredVendors(models []queries.DiscoverVendorsQueryResponse) []DiscoveredVendor {
	response := make([]DiscoveredVendor, len(models))
	for i, m := range models {
		response[i] = DiscoveredVendor{
			ID:           m.VendorID.String(),
			Name:         m.Name,
			Category:     m.Category,
			VendorType:   m.VendorType,
			Online:       m.Online,
			OpeningNote:  m.OpeningNote,
			Latitude:     m.Latitude,
			Longitude:    m.Longitude,
			DistanceKm:   m.DistanceKm,
			UpdatedToday: m.UpdatedToday,
		}
	}
	return response
}

// CatalogItem is one listed item of a vendor's catalog.
type CatalogItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Unit       string `json:"unit"`
	PricePaise int64  `json:"price_paise"`
	Available  bool   `json:"available"`
}

func toCatalogItems(models []queries.GetVendorCatalogQueryResponse) []CatalogItem {
	response := make([]CatalogItem, len(models))
	for i, m := range models {
		response[i] = CatalogItem{
			ID:         m.ItemID.String(),
			Title:      m.Title,
			Unit:       m.Unit,
			PricePaise: m.PricePaise,
			Available:  m.Available,
		}
	}
	return response
}

// OrderLine is one immutable line snapshot of an order.
type OrderLine struct {
	Title          string `json:"title"`
	Unit           string `json:"unit"`
	Quantity       int    `json:"quantity"`
	UnitPricePaise int64  `json:"unit_price_paise"`
	SubtotalPaise  int64  `json:"subtotal_paise"`
}

// Order is one order with its line snapshots and derived total.
type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	VendorID    string      `json:"vendor_id"`
	Status      string      `json:"status"`
	PaymentMode string      `json:"payment_mode"`
	TotalPaise  int64       `json:"total_paise"`
	CreatedAt   time.Time   `json:"created_at"`
	Lines       []OrderLine `json:"lines"`
}

func toOrders(models []queries.OrderQueryResponse) []Order {
	response := make([]Order, len(models))
	for i, m := range models {
		lines := make([]OrderLine, len(m.Lines))
		for j, l := range m.Lines {
			lines[j] = OrderLine{
				Title:          l.Title,
				Unit:           l.Unit,
				Quantity:       l.Quantity,
				UnitPricePaise: l.UnitPricePaise,
				SubtotalPaise:  l.SubtotalPaise,
			}
		}
		response[i] = Order{
			ID:          m.OrderID.String(),
			CustomerID:  m.CustomerID.String(),
			VendorID:    m.VendorID.String(),
			Status:      m.Status,
			PaymentMode: m.PaymentMode,
			TotalPaise:  m.TotalPaise,
			CreatedAt:   m.CreatedAt,
			Lines:       lines,
		}
	}
	return response
}

// VendorProfile is the owner's (or admin's) view of a vendor.
type VendorProfile struct {
	ID                string     `json:"id"`
	OwnerID           string     `json:"owner_id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	VendorType        string     `json:"vendor_type"`
	Phone             string     `json:"phone"`
	OpeningNote       string     `json:"opening_note,omitempty"`
	Online            bool       `json:"online"`
	Latitude          *float64   `json:"latitude,omitempty"`
	Longitude         *float64   `json:"longitude,omitempty"`
	LocationUpdatedAt *time.Time `json:"location_updated_at,omitempty"`
	Verified          bool       `json:"verified"`
	Plan              string     `json:"plan"`
}

func toVendorProfile(m queries.VendorProfileResponse) VendorProfile {
	profile := VendorProfile{
		ID:          m.VendorID.String(),
		OwnerID:     m.OwnerID.String(),
		Name:        m.Name,
		Category:    m.Category,
		VendorType:  m.VendorType,
		Phone:       m.Phone,
		OpeningNote: m.OpeningNote,
		Online:      m.Online,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Verified:    m.Verified,
		Plan:        m.Plan,
	}
	if !m.LocationUpdatedAt.IsZero() {
		updatedAt := m.LocationUpdatedAt
		profile.LocationUpdatedAt = &updatedAt
	}
	return profile
}

func toVendorProfiles(models []queries.VendorProfileResponse) []VendorProfile {
	response := make([]VendorProfile, len(models))
	for i, m := range models {
		response[i] = toVendorProfile(m)
	}
	return response
}
