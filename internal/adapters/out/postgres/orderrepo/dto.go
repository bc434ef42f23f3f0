// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/order"
	"dragonpath/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The escrow sub-ledger, the shipping address, and the condition record are
// embedded in the orders table; line items, milestones, and evidence photos
// live in child tables keyed by order ID.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID `gorm:"type:uuid;index"`
	SellerID  uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`

	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`

	Status        int `gorm:"index"`
	PaymentStatus int

	PaymentMethodID      string
	PaymentTransactionID string
	PaidAt               *time.Time

	EscrowHeldAt              *time.Time
	EscrowSellerReleasedAt    *time.Time
	EscrowLogisticsReleasedAt *time.Time
	EscrowSellerAmount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	EscrowLogisticsAmount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	EscrowPlatformFee         decimal.Decimal `gorm:"type:numeric(12,2)"`

	ConditionVideoURL             string
	ConditionLogisticsConfirmedAt *time.Time
	ConditionLogisticsNotes       string

	DeliveredAt      *time.Time `gorm:"index"`
	BuyerConfirmedAt *time.Time
	CancelledAt      *time.Time
	RefundedAt       *time.Time

	Items          []OrderItemDTO     `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Milestones     []MilestoneDTO     `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	EvidencePhotos []EvidencePhotoDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the orders table.
type AddressDTO struct {
	Name       string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// OrderItemDTO represents one purchased line item of an order.
type OrderItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Name      string
	ImageURL  string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// MilestoneDTO represents one tracking milestone of an order.
// The auto-increment primary key preserves the recorded order.
type MilestoneDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	Timestamp time.Time
}

// TableName specifies the database table name for tracking milestones.
func (MilestoneDTO) TableName() string {
	return "order_milestones"
}

// EvidencePhotoDTO represents one seller-uploaded condition evidence photo.
type EvidencePhotoDTO struct {
	ID         uint      `gorm:"primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	URL        string
	UploadedAt time.Time
}

// TableName specifies the database table name for evidence photos.
func (EvidencePhotoDTO) TableName() string {
	return "order_evidence_photos"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	address := aggregate.Address()
	pay := aggregate.Payment()
	escrow := pay.Escrow()
	condition := aggregate.Condition()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			ImageURL:  item.ImageURL(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	milestones := make([]MilestoneDTO, 0, len(aggregate.Tracking().Milestones()))
	for _, m := range aggregate.Tracking().Milestones() {
		milestones = append(milestones, MilestoneDTO{
			OrderID:   orderID,
			Status:    int(m.Status()),
			Timestamp: m.Timestamp(),
		})
	}

	photos := make([]EvidencePhotoDTO, 0, len(condition.SellerPhotos()))
	for _, p := range condition.SellerPhotos() {
		photos = append(photos, EvidencePhotoDTO{
			OrderID:    orderID,
			URL:        p.URL(),
			UploadedAt: p.UploadedAt(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		BuyerID:   aggregate.BuyerID().Bytes(),
		SellerID:  aggregate.SellerID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),

		Subtotal:    aggregate.Subtotal().Amount(),
		ShippingFee: aggregate.ShippingFee().Amount(),
		Total:       aggregate.Total().Amount(),

		Address: AddressDTO{
			Name:       address.Name(),
			Line1:      address.Line1(),
			Line2:      address.Line2(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
			Phone:      address.Phone(),
		},

		Status:        int(aggregate.Status()),
		PaymentStatus: int(pay.Status()),

		PaymentMethodID:      pay.Method().ID(),
		PaymentTransactionID: pay.TransactionID(),
		PaidAt:               pay.PaidAt(),

		EscrowHeldAt:              escrow.HeldAt(),
		EscrowSellerReleasedAt:    escrow.SellerReleasedAt(),
		EscrowLogisticsReleasedAt: escrow.LogisticsReleasedAt(),
		EscrowSellerAmount:        escrow.SellerAmount().Amount(),
		EscrowLogisticsAmount:     escrow.LogisticsAmount().Amount(),
		EscrowPlatformFee:         escrow.PlatformFee().Amount(),

		ConditionVideoURL:             condition.SellerVideoURL(),
		ConditionLogisticsConfirmedAt: condition.LogisticsConfirmedAt(),
		ConditionLogisticsNotes:       condition.LogisticsNotes(),

		DeliveredAt:      aggregate.DeliveredAt(),
		BuyerConfirmedAt: aggregate.BuyerConfirmedAt(),
		CancelledAt:      aggregate.CancelledAt(),
		RefundedAt:       aggregate.RefundedAt(),

		Items:          items,
		Milestones:     milestones,
		EvidencePhotos: photos,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder without re-deriving
// the financial split.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewLineItem(productID, itemDTO.Name, itemDTO.ImageURL, itemDTO.Quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	milestones := make([]order.Milestone, 0, len(dto.Milestones))
	for _, mDTO := range dto.Milestones {
		m, mErr := order.NewMilestone(order.Status(mDTO.Status), mDTO.Timestamp)
		if mErr != nil {
			return nil, mErr
		}
		milestones = append(milestones, m)
	}

	photos := make([]order.EvidencePhoto, 0, len(dto.EvidencePhotos))
	for _, pDTO := range dto.EvidencePhotos {
		photos = append(photos, order.NewEvidencePhoto(pDTO.URL, pDTO.UploadedAt))
	}

	address, err := order.NewAddress(
		dto.Address.Name,
		dto.Address.Line1,
		dto.Address.Line2,
		dto.Address.City,
		dto.Address.State,
		dto.Address.PostalCode,
		dto.Address.Country,
		dto.Address.Phone,
	)
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromID(dto.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	shippingFee, err := kernel.NewMoney(dto.ShippingFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	sellerAmount, err := kernel.NewMoney(dto.EscrowSellerAmount)
	if err != nil {
		return nil, err
	}
	logisticsAmount, err := kernel.NewMoney(dto.EscrowLogisticsAmount)
	if err != nil {
		return nil, err
	}
	platformFee, err := kernel.NewMoney(dto.EscrowPlatformFee)
	if err != nil {
		return nil, err
	}

	escrow := order.RestoreEscrow(
		dto.EscrowHeldAt,
		dto.EscrowSellerReleasedAt,
		dto.EscrowLogisticsReleasedAt,
		sellerAmount,
		logisticsAmount,
		platformFee,
	)

	pay := order.RestorePayment(
		method,
		dto.PaymentTransactionID,
		dto.PaidAt,
		order.PaymentStatus(dto.PaymentStatus),
		escrow,
	)

	condition := order.RestoreCondition(
		photos,
		dto.ConditionVideoURL,
		dto.ConditionLogisticsConfirmedAt,
		dto.ConditionLogisticsNotes,
	)

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		BuyerID:          buyerID,
		SellerID:         sellerID,
		CreatedAt:        dto.CreatedAt,
		Items:            items,
		Subtotal:         subtotal,
		ShippingFee:      shippingFee,
		Total:            total,
		Address:          address,
		Status:           order.Status(dto.Status),
		Payment:          pay,
		Condition:        condition,
		Tracking:         order.RestoreTracking(milestones),
		DeliveredAt:      dto.DeliveredAt,
		BuyerConfirmedAt: dto.BuyerConfirmedAt,
		CancelledAt:      dto.CancelledAt,
		RefundedAt:       dto.RefundedAt,
	})
}
