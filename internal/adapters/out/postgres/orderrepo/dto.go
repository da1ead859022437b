// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Order lines are immutable snapshots and live in
// their own table, written once when the order is created.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerPhone string         `gorm:"type:varchar(32);not null"`
	VendorID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	PaymentMode   int            `gorm:"type:int;not null"`
	Status        int            `gorm:"type:int;not null;index"`
	CreatedAt     time.Time      `gorm:"not null"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one snapshotted line within an order.
type OrderLineDTO struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Unit           string    `gorm:"type:varchar(64);not null"`
	Quantity       int       `gorm:"type:int;not null"`
	UnitPricePaise int64     `gorm:"type:bigint;not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:        orderID,
			Title:          line.Title(),
			Unit:           line.Unit(),
			Quantity:       line.Quantity(),
			UnitPricePaise: line.UnitPricePaise(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    aggregate.CustomerID().Bytes(),
		CustomerPhone: aggregate.CustomerPhone(),
		VendorID:      aggregate.VendorID().Bytes(),
		PaymentMode:   int(aggregate.PaymentMode()),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewLine(lineDTO.Title, lineDTO.Unit, lineDTO.Quantity, lineDTO.UnitPricePaise)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerPhone,
		vendorID,
		order.PaymentMode(dto.PaymentMode),
		lines,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
