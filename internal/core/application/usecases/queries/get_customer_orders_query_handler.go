package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves customer order histories.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order histories.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the order history query, newest orders first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db, "o.customer_id = ?", query.CustomerID().Bytes())
}

// loadOrders assembles order listings with their line snapshots in one
// pass over a joined result set. Shared by the customer and vendor
// order queries, which differ only in the WHERE clause.
func loadOrders(ctx context.Context, db *gorm.DB, where string, arg any) ([]OrderQueryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.vendor_id,
			o.payment_mode,
			o.status,
			o.created_at,
			l.title,
			l.unit,
			l.quantity,
			l.unit_price_paise
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE `+where+`
		ORDER BY o.created_at DESC, o.id, l.id
	`, arg).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderQueryResponse, 0)

	for rows.Next() {
		var (
			id, customerID, vendorID uuid.UUID
			paymentMode, status      int
			createdAt                time.Time
			title, unit              string
			quantity                 int
			unitPricePaise           int64
		)

		if err = rows.Scan(
			&id, &customerID, &vendorID, &paymentMode, &status, &createdAt,
			&title, &unit, &quantity, &unitPricePaise,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(orders) == 0 || !orders[len(orders)-1].OrderID.IsEqual(orderID) {
			orderCustomerID, custErr := kernel.UUIDFromBytes(customerID[:])
			if custErr != nil {
				return nil, custErr
			}
			orderVendorID, vendErr := kernel.UUIDFromBytes(vendorID[:])
			if vendErr != nil {
				return nil, vendErr
			}

			orders = append(orders, OrderQueryResponse{
				OrderID:     orderID,
				CustomerID:  orderCustomerID,
				VendorID:    orderVendorID,
				Status:      order.Status(status).String(),
				PaymentMode: order.PaymentMode(paymentMode).String(),
				CreatedAt:   createdAt,
				Lines:       make([]OrderLineQueryResponse, 0, 1),
			})
		}

		current := &orders[len(orders)-1]
		subtotal := int64(quantity) * unitPricePaise
		current.Lines = append(current.Lines, OrderLineQueryResponse{
			Title:          title,
			Unit:           unit,
			Quantity:       quantity,
			UnitPricePaise: unitPricePaise,
			SubtotalPaise:  subtotal,
		})
		current.TotalPaise += subtotal
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
