// Package queries contains read operations in the CQRS architecture.
// Query handlers read directly from the database, bypassing the aggregate
// layer, and return lightweight response structs shaped for presentation.
package queries

import (
	"errors"
	"time"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// Roles a caller may query order history as. An unrecognized role applies no
// party filter and returns the full set; dashboard clients rely on this.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// GetUserOrdersQuery retrieves a user's order history, most recent first.
//
// Example:
//
//	query, _ := NewGetUserOrdersQuery(userID, RoleBuyer)
//	handler := NewGetUserOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order history: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetUserOrdersQuery struct {
	userID kernel.UUID
	role   string

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for one user's order history.
// The role selects which side of the trade to match: RoleBuyer matches orders
// the user placed, RoleSeller matches orders the user sold.
func NewGetUserOrdersQuery(userID kernel.UUID, role string) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the queried user's identifier.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns which side of the trade to match.
func (q GetUserOrdersQuery) Role() string {
	return q.role
}

// GetUserOrdersQueryResponse is one order history row.
type GetUserOrdersQueryResponse struct {
	ID            kernel.UUID
	BuyerID       kernel.UUID
	SellerID      kernel.UUID
	Status        string
	PaymentStatus string
	Total         decimal.Decimal
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}
