package historyrepo

import (
	"context"

	"shiptracker/internal/adapters/out/postgres/dberrors"
	"shiptracker/internal/core/domain/model/history"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append inserts a new ledger entry and assigns the generated identifier to
// the entry. Prior entries are never touched.
func (r *GormHistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return dberrors.Classify("order_status_history", err)
	}

	return entry.AssignID(dto.ID)
}

// ListByOrder retrieves all entries for a shipment, newest first.
// Ties on changed_at resolve by insertion order so the sequence stays stable.
func (r *GormHistoryRepository) ListByOrder(ctx context.Context, orderID int64) ([]*history.Entry, error) {
	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("changed_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, dberrors.Classify("order_status_history", err)
	}

	entries := make([]*history.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
