// Package ports defines repository interfaces for the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their complete state: line items, payment and escrow record,
// condition documentation, and tracking milestones.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its full lifecycle state.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByBuyer retrieves all orders placed by the given buyer,
	// most recent first.
	GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error)

	// GetAllBySeller retrieves all orders sold by the given seller,
	// most recent first.
	GetAllBySeller(ctx context.Context, sellerID kernel.UUID) ([]*order.Order, error)

	// GetAllDeliveredBefore retrieves orders still in Delivered status whose
	// delivery timestamp is at or before the cutoff. Used by the scheduled
	// escrow auto-release to find orders the buyer never confirmed.
	GetAllDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
