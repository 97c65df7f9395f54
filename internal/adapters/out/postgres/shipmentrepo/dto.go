// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. This package implements the repository pattern for the
// shipment aggregate, handling the conversion between domain entities and
// database representations.
package shipmentrepo

import (
	"time"

	"shiptracker/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Metadata is stored as a serialized JSON document and rehydrated
// on read.
type ShipmentDTO struct {
	ID            int64             `gorm:"primaryKey;autoIncrement"`
	CustomerName  string            `gorm:"not null"`
	Phone         string            `gorm:"not null"`
	Address       string            `gorm:"not null"`
	Origin        string            `gorm:"not null"`
	Destination   string            `gorm:"not null"`
	CurrentStatus string            `gorm:"not null;index"`
	Metadata      shipment.Metadata `gorm:"serializer:json;type:jsonb"`
	CreatedAt     time.Time         `gorm:"not null;index"`
	UpdatedAt     time.Time         `gorm:"not null"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "orders".
func (ShipmentDTO) TableName() string {
	return "orders"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:            aggregate.ID(),
		CustomerName:  aggregate.CustomerName(),
		Phone:         aggregate.Phone(),
		Address:       aggregate.Address(),
		Origin:        aggregate.Origin(),
		Destination:   aggregate.Destination(),
		CurrentStatus: aggregate.CurrentStatus().String(),
		Metadata:      aggregate.Metadata(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment aggregate.
// Stored values are revalidated through RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(
		dto.ID,
		dto.CustomerName,
		dto.Phone,
		dto.Address,
		dto.Origin,
		dto.Destination,
		shipment.Status(dto.CurrentStatus),
		dto.Metadata,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
