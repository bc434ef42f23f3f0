package orderrepo

import (
	"context"
	"errors"
	"time"

	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/order"
	"dragonpath/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Child collections (milestones, evidence photos, line items) are replaced
// wholesale; they are small and mostly append-only.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	// Children are replaced separately below; keep them out of the parent update.
	parent := dto
	parent.Items = nil
	parent.Milestones = nil
	parent.EvidencePhotos = nil

	// Select("*") includes zero-valued columns; a plain struct update skips them.
	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&parent)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, child := range []any{&OrderItemDTO{}, &MilestoneDTO{}, &EvidencePhotoDTO{}} {
		if err := db.Where("order_id = ?", dto.ID).Delete(child).Error; err != nil {
			return err
		}
	}
	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}
	if len(dto.Milestones) > 0 {
		if err := db.Create(&dto.Milestones).Error; err != nil {
			return err
		}
	}
	if len(dto.EvidencePhotos) > 0 {
		if err := db.Create(&dto.EvidencePhotos).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with all child records.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByBuyer retrieves all orders placed by the given buyer, most recent first.
func (r *GormOrderRepository) GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.preloaded(ctx).
		Order("created_at DESC").
		Find(&dtos, "buyer_id = ?", buyerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllBySeller retrieves all orders sold by the given seller, most recent first.
func (r *GormOrderRepository) GetAllBySeller(ctx context.Context, sellerID kernel.UUID) ([]*order.Order, error) {
	if err := sellerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.preloaded(ctx).
		Order("created_at DESC").
		Find(&dtos, "seller_id = ?", sellerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllDeliveredBefore retrieves orders still in Delivered status whose
// delivery timestamp is at or before the cutoff.
func (r *GormOrderRepository) GetAllDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.preloaded(ctx).
		Find(&dtos, "status = ? AND delivered_at <= ?", order.Delivered, cutoff).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// preloaded returns a query with all child collections preloaded in stable order.
func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_milestones.id")
		}).
		Preload("EvidencePhotos", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_evidence_photos.id")
		})
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
