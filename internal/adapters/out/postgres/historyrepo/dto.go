// Package historyrepo provides data transfer objects and mapping functions for
// the status history ledger. Rows are insert-only; the repository exposes no
// update or delete operation.
package historyrepo

import (
	"time"

	"shiptracker/internal/adapters/out/postgres/shipmentrepo"
	"shiptracker/internal/core/domain/model/history"
	"shiptracker/internal/core/domain/model/shipment"
)

// HistoryDTO represents one row of the status history ledger.
// The Order association exists so AutoMigrate emits the foreign key with
// ON DELETE CASCADE; history rows are removed together with their shipment.
type HistoryDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"not null;index"`
	Order     shipmentrepo.ShipmentDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Status    string `gorm:"not null"`
	Note      string
	ChangedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger entries.
func (HistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *history.Entry) HistoryDTO {
	return HistoryDTO{
		ID:        entry.ID(),
		OrderID:   entry.OrderID(),
		Status:    entry.Status().String(),
		Note:      entry.Note(),
		ChangedAt: entry.ChangedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto HistoryDTO) (*history.Entry, error) {
	return history.RestoreEntry(
		dto.ID,
		dto.OrderID,
		shipment.Status(dto.Status),
		dto.Note,
		dto.ChangedAt,
	)
}
