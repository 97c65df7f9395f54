// Package http is the inbound HTTP adapter. It binds requests into commands
// and queries, maps application errors to status codes, and keeps the public
// tracking surface separate from the authenticated administrative API.
package http

import (
	"net/http"
	"strconv"

	"shiptracker/internal/core/application/usecases/commands"
	"shiptracker/internal/core/application/usecases/queries"
	"shiptracker/internal/core/domain/model/shipment"
	"shiptracker/internal/core/ports"
	"shiptracker/internal/pkg/errs"
	"shiptracker/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const invalidMetadataWarning = "metadata was not valid JSON and has been ignored"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler
	changeStatusHandler   commands.ChangeShipmentStatusCommandHandler
	deleteShipmentHandler commands.DeleteShipmentCommandHandler

	// Query handlers
	getShipmentHandler     queries.GetShipmentQueryHandler
	listShipmentsHandler   queries.ListShipmentsQueryHandler
	searchShipmentsHandler queries.SearchShipmentsQueryHandler
	trackShipmentHandler   queries.TrackShipmentQueryHandler

	metrics     *metrics.Metrics
	development bool
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	changeStatusHandler commands.ChangeShipmentStatusCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	searchShipmentsHandler queries.SearchShipmentsQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	m *metrics.Metrics,
	development bool,
) *Server {
	return &Server{
		createShipmentHandler:  createShipmentHandler,
		updateShipmentHandler:  updateShipmentHandler,
		changeStatusHandler:    changeStatusHandler,
		deleteShipmentHandler:  deleteShipmentHandler,
		getShipmentHandler:     getShipmentHandler,
		listShipmentsHandler:   listShipmentsHandler,
		searchShipmentsHandler: searchShipmentsHandler,
		trackShipmentHandler:   trackShipmentHandler,
		metrics:                m,
		development:            development,
	}
}

// RegisterRoutes wires the administrative and public routes. The admin group
// sits behind the bearer-token guard; tracking stays open.
func (s *Server) RegisterRoutes(e *echo.Echo, adminToken string) {
	admin := e.Group("/api/orders", BearerAuth(adminToken))
	admin.POST("", s.CreateOrder)
	admin.GET("", s.GetOrders)
	admin.GET("/search", s.SearchOrders)
	admin.GET("/:id", s.GetOrder)
	admin.PUT("/:id", s.UpdateOrder)
	admin.PUT("/:id/status", s.UpdateOrderStatus)
	admin.DELETE("/:id", s.DeleteOrder)

	e.GET("/api/track/:id", s.TrackOrder)
}

// CreateOrder handles POST /api/orders - registers a new shipment and writes
// the first ledger entry.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	// Malformed metadata is a soft failure: the shipment is created without
	// it and the caller gets a warning instead of a rejection.
	warning := ""
	metadata, err := shipment.ParseMetadata(request.Metadata)
	if err != nil {
		warning = invalidMetadataWarning
		metadata = nil
	}

	cmd, err := commands.NewCreateShipmentCommand(
		request.CustomerName,
		request.Phone,
		request.Address,
		request.Origin,
		request.Destination,
		request.Status,
		metadata,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	s.metrics.ShipmentsCreated.Inc()

	order, err := s.fetchOrder(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MutationResponse{
		Message: "Order created successfully",
		Order:   order,
		Warning: warning,
	})
}

// GetOrders handles GET /api/orders - retrieves one page of shipments,
// newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, limit := paginationParams(ctx)

	query := queries.NewListShipmentsQuery(page, limit)

	result, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pageFromReadModel(result))
}

// SearchOrders handles GET /api/orders/search - finds shipments by customer
// name, phone or identifier.
func (s *Server) SearchOrders(ctx echo.Context) error {
	term := ctx.QueryParam("q")
	if term == "" {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Search term required",
		})
	}

	page, limit := paginationParams(ctx)

	query := queries.NewSearchShipmentsQuery(term, page, limit)

	result, err := s.searchShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pageFromReadModel(result))
}

// GetOrder handles GET /api/orders/:id - retrieves one shipment with its
// full audit trail.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentDetailResponse{
		ShipmentResponse: shipmentFromReadModel(result.Shipment),
		History:          historyFromReadModels(result.History),
	})
}

// UpdateOrder handles PUT /api/orders/:id - applies a partial update to the
// shipment record. The current status cannot be changed here; the status
// endpoint is the only audited path for that.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var request UpdateShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	patch := ports.ShipmentPatch{
		CustomerName: request.CustomerName,
		Phone:        request.Phone,
		Address:      request.Address,
		Origin:       request.Origin,
		Destination:  request.Destination,
	}

	warning := ""
	if request.Metadata != nil {
		metadata, metadataErr := shipment.ParseMetadata(*request.Metadata)
		if metadataErr != nil {
			warning = invalidMetadataWarning
		} else {
			patch.Metadata = &metadata
		}
	}

	cmd, err := commands.NewUpdateShipmentCommand(id, patch)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	order, err := s.fetchOrder(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MutationResponse{
		Message: "Order updated successfully",
		Order:   order,
		Warning: warning,
	})
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - records a status
// transition and appends the matching ledger entry in one transaction.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(id, request.Status, request.Note)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	s.metrics.StatusChanges.WithLabelValues(cmd.Status().String()).Inc()

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusMutationResponse{
		Message: "Order status updated successfully",
		Order: ShipmentDetailResponse{
			ShipmentResponse: shipmentFromReadModel(result.Shipment),
			History:          historyFromReadModels(result.History),
		},
	})
}

// DeleteOrder handles DELETE /api/orders/:id - removes a shipment and its
// ledger. Deleting an unknown shipment reports not found, so a repeated
// delete fails the same way every time.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	s.metrics.ShipmentsDeleted.Inc()

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: "Order deleted successfully",
	})
}

// TrackOrder handles GET /api/track/:id - the public tracking view. Contact
// details never appear in this response.
func (s *Server) TrackOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewTrackShipmentQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackResponse{
		ID:            result.ID,
		CustomerName:  result.CustomerName,
		Origin:        result.Origin,
		Destination:   result.Destination,
		CurrentStatus: result.CurrentStatus,
		UpdatedAt:     result.UpdatedAt,
		History:       historyFromReadModels(result.History),
	})
}

// fetchOrder re-reads a shipment after a mutation so the response reflects
// the stored state.
func (s *Server) fetchOrder(ctx echo.Context, id int64) (ShipmentResponse, error) {
	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return ShipmentResponse{}, err
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ShipmentResponse{}, err
	}

	return shipmentFromReadModel(result.Shipment), nil
}

// orderID parses the :id path parameter.
func orderID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}

// paginationParams reads page and limit from the query string. Absent or
// malformed values fall back to zero, which the query constructors normalize.
func paginationParams(ctx echo.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	return page, limit
}

func pageFromReadModel(result queries.ShipmentsPageResponse) ShipmentsPageResponse {
	orders := make([]ShipmentResponse, len(result.Items))
	for i, item := range result.Items {
		orders[i] = shipmentFromReadModel(item)
	}

	return ShipmentsPageResponse{
		Orders:     orders,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.PageSize,
		TotalPages: result.TotalPages,
	}
}
