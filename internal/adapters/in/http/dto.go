package http

import (
	"encoding/json"
	"time"

	"shiptracker/internal/core/application/usecases/queries"
)

// CreateShipmentRequest is the body of POST /api/orders.
type CreateShipmentRequest struct {
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Origin       string          `json:"origin"`
	Destination  string          `json:"destination"`
	Status       string          `json:"status"`
	Metadata     json.RawMessage `json:"metadata"`
}

// UpdateShipmentRequest is the body of PUT /api/orders/:id. Absent fields are
// left untouched; the current status is not updatable here.
type UpdateShipmentRequest struct {
	CustomerName *string          `json:"customer_name"`
	Phone        *string          `json:"phone"`
	Address      *string          `json:"address"`
	Origin       *string          `json:"origin"`
	Destination  *string          `json:"destination"`
	Metadata     *json.RawMessage `json:"metadata"`
}

// ChangeStatusRequest is the body of PUT /api/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// ShipmentResponse is the administrative view of a shipment.
type ShipmentResponse struct {
	ID            int64          `json:"id"`
	CustomerName  string         `json:"customer_name"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	CurrentStatus string         `json:"current_status"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// HistoryEntryResponse is one audit-trail entry.
type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	ChangedAt time.Time `json:"changed_at"`
}

// ShipmentDetailResponse joins a shipment with its audit trail, newest entry
// first.
type ShipmentDetailResponse struct {
	ShipmentResponse
	History []HistoryEntryResponse `json:"history"`
}

// ShipmentsPageResponse is one page of a list or search result.
type ShipmentsPageResponse struct {
	Orders     []ShipmentResponse `json:"orders"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

// MutationResponse wraps a successful write with a confirmation message and
// the resulting record. Warning is set when an optional part of the request
// was dropped, such as malformed metadata.
type MutationResponse struct {
	Message string           `json:"message"`
	Order   ShipmentResponse `json:"order"`
	Warning string           `json:"warning,omitempty"`
}

// StatusMutationResponse wraps a status change with the updated record and
// its refreshed audit trail.
type StatusMutationResponse struct {
	Message string                 `json:"message"`
	Order   ShipmentDetailResponse `json:"order"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TrackResponse is the public, customer-facing view. It never includes the
// phone number or delivery address.
type TrackResponse struct {
	ID            int64                  `json:"id"`
	CustomerName  string                 `json:"customer_name"`
	Origin        string                 `json:"origin"`
	Destination   string                 `json:"destination"`
	CurrentStatus string                 `json:"current_status"`
	UpdatedAt     time.Time              `json:"updated_at"`
	History       []HistoryEntryResponse `json:"history"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func shipmentFromReadModel(item queries.ShipmentReadModel) ShipmentResponse {
	return ShipmentResponse{
		ID:            item.ID,
		CustomerName:  item.CustomerName,
		Phone:         item.Phone,
		Address:       item.Address,
		Origin:        item.Origin,
		Destination:   item.Destination,
		CurrentStatus: item.CurrentStatus,
		Metadata:      item.Metadata,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func historyFromReadModels(entries []queries.HistoryEntryReadModel) []HistoryEntryResponse {
	history := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		history[i] = HistoryEntryResponse{
			Status:    entry.Status,
			Note:      entry.Note,
			ChangedAt: entry.ChangedAt,
		}
	}
	return history
}
