package http

import "github.com/go-playground/validator/v10"

// RequestValidator adapts go-playground/validator to echo's Validator hook.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for all request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the struct tags on a bound request body.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// LocationPayload is a geographic coordinate pair in a request body.
type LocationPayload struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// RequestOTPRequest is the payload for POST /auth/otp.
type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
}

// RegisterVendorRequest is the payload for POST /vendors.
type RegisterVendorRequest struct {
	Name       string           `json:"name" validate:"required,max=255"`
	Category   string           `json:"category" validate:"required,max=64"`
	VendorType string           `json:"vendor_type" validate:"required"`
	Phone      string           `json:"phone" validate:"required,e164"`
	OTPCode    string           `json:"otp_code" validate:"required,len=6,numeric"`
	Location   *LocationPayload `json:"location,omitempty"`
}

// PlaceOrderItemRequest is one requested catalog item within a checkout.
type PlaceOrderItemRequest struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// PlaceOrderRequest is the payload for POST /orders.
type PlaceOrderRequest struct {
	VendorID    string                  `json:"vendor_id" validate:"required,uuid"`
	Phone       string                  `json:"phone" validate:"required,e164"`
	PaymentMode string                  `json:"payment_mode" validate:"required"`
	Items       []PlaceOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ChangeOrderStatusRequest is the payload for order status transitions.
type ChangeOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetPresenceRequest is the payload for PUT /vendors/:id/presence.
type SetPresenceRequest struct {
	Online      bool   `json:"online"`
	OpeningNote string `json:"opening_note" validate:"max=200"`
}

// AddCatalogItemRequest is the payload for POST /vendors/:id/items.
type AddCatalogItemRequest struct {
	Title      string `json:"title" validate:"required,max=255"`
	Unit       string `json:"unit" validate:"required,max=64"`
	PricePaise int64  `json:"price_paise" validate:"min=0"`
}

// UpdateCatalogItemRequest is the payload for PUT /items/:id.
type UpdateCatalogItemRequest struct {
	Title      string `json:"title" validate:"required,max=255"`
	Unit       string `json:"unit" validate:"required,max=64"`
	PricePaise int64  `json:"price_paise" validate:"min=0"`
	Available  bool   `json:"available"`
}

// ChangeVendorPlanRequest is the payload for PUT /admin/vendors/:id/plan.
type ChangeVendorPlanRequest struct {
	Plan string `json:"plan" validate:"required"`
}
