package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; terminal states end their lifecycle in place.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line snapshots.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes to an existing order.
	// Lines are immutable and never rewritten after Add.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line snapshots.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
