package queries

import (
	"context"
	"time"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves order history rows from the database.
// Reads the orders table directly; line items and milestones are not loaded
// for history listings.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the order history query.
// RoleBuyer matches the buyer column, RoleSeller the seller column, and any
// other role returns every order. Results are sorted most recent first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			buyer_id,
			seller_id,
			status,
			payment_status,
			total,
			created_at,
			delivered_at
		FROM orders
	`
	args := make([]any, 0, 1)
	switch query.Role() {
	case RoleBuyer:
		sql += ` WHERE buyer_id = ?`
		args = append(args, query.UserID().Bytes())
	case RoleSeller:
		sql += ` WHERE seller_id = ?`
		args = append(args, query.UserID().Bytes())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetUserOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, buyerID, sellerID uuid.UUID
			status                int
			paymentStatus         int
			total                 decimal.Decimal
			createdAt             time.Time
			deliveredAt           *time.Time
		)

		if err = rows.Scan(
			&id,
			&buyerID,
			&sellerID,
			&status,
			&paymentStatus,
			&total,
			&createdAt,
			&deliveredAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		buyer, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}
		seller, idErr := kernel.UUIDFromBytes(sellerID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetUserOrdersQueryResponse{
			ID:            orderID,
			BuyerID:       buyer,
			SellerID:      seller,
			Status:        order.Status(status).String(),
			PaymentStatus: order.PaymentStatus(paymentStatus).String(),
			Total:         total,
			CreatedAt:     createdAt,
			DeliveredAt:   deliveredAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
