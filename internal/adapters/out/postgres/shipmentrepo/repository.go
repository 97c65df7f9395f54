package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"shiptracker/internal/adapters/out/postgres/dberrors"
	"shiptracker/internal/core/domain/model/shipment"
	"shiptracker/internal/core/ports"
	"shiptracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment to the database and assigns the generated
// identifier to the aggregate.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrors.Classify("orders", err)
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves the full current state of an existing shipment.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("customer_name", "phone", "address", "origin", "destination",
			"current_status", "metadata", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return dberrors.Classify("orders", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", dto.ID)
	}

	return nil
}

// Patch applies a partial update covering only the allow-listed fields
// present in the patch, refreshing updated_at alongside.
func (r *GormShipmentRepository) Patch(ctx context.Context, id int64, patch ports.ShipmentPatch) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("fields")
	}

	dto := ShipmentDTO{UpdatedAt: time.Now().UTC()}
	columns := []string{"updated_at"}

	if patch.CustomerName != nil {
		dto.CustomerName = *patch.CustomerName
		columns = append(columns, "customer_name")
	}
	if patch.Phone != nil {
		dto.Phone = *patch.Phone
		columns = append(columns, "phone")
	}
	if patch.Address != nil {
		dto.Address = *patch.Address
		columns = append(columns, "address")
	}
	if patch.Origin != nil {
		dto.Origin = *patch.Origin
		columns = append(columns, "origin")
	}
	if patch.Destination != nil {
		dto.Destination = *patch.Destination
		columns = append(columns, "destination")
	}
	if patch.Metadata != nil {
		dto.Metadata = *patch.Metadata
		columns = append(columns, "metadata")
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", id).
		Select(columns).
		Updates(&dto)
	if result.Error != nil {
		return dberrors.Classify("orders", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id)
	}

	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, dberrors.Classify("orders", err)
	}

	return toDomain(dto)
}

// Delete hard-deletes a shipment. A missing row yields ObjectNotFoundError,
// so repeated deletes fail idempotently rather than crash.
func (r *GormShipmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id)
	if result.Error != nil {
		return dberrors.Classify("orders", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id)
	}

	return nil
}
