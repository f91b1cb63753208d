// Package http exposes the application's commands and queries as a JSON REST
// API on echo. It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"hatid/internal/core/application/usecases/commands"
	"hatid/internal/core/application/usecases/queries"
	"hatid/internal/core/domain/model/delivery"
	"hatid/internal/core/domain/model/kernel"
	"hatid/internal/core/domain/model/order"
	"hatid/internal/core/domain/model/ticket"
	"hatid/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the API.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	progressOrderHandler        commands.ProgressOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	progressDeliveryHandler     commands.ProgressDeliveryCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler
	cancelDeliveryHandler       commands.CancelDeliveryCommandHandler
	submitRatingHandler         commands.SubmitRatingCommandHandler
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler
	openTicketHandler           commands.OpenTicketCommandHandler
	progressTicketHandler       commands.ProgressTicketCommandHandler
	postTicketMessageHandler    commands.PostTicketMessageCommandHandler

	// Query handlers
	getActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
	getAvailableRidersHandler queries.GetAvailableRidersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	progressOrderHandler commands.ProgressOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	progressDeliveryHandler commands.ProgressDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler,
	openTicketHandler commands.OpenTicketCommandHandler,
	progressTicketHandler commands.ProgressTicketCommandHandler,
	postTicketMessageHandler commands.PostTicketMessageCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAvailableRidersHandler queries.GetAvailableRidersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		progressOrderHandler:        progressOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		assignDeliveryHandler:       assignDeliveryHandler,
		progressDeliveryHandler:     progressDeliveryHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		cancelDeliveryHandler:       cancelDeliveryHandler,
		submitRatingHandler:         submitRatingHandler,
		setRiderAvailabilityHandler: setRiderAvailabilityHandler,
		openTicketHandler:           openTicketHandler,
		progressTicketHandler:       progressTicketHandler,
		postTicketMessageHandler:    postTicketMessageHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getAvailableRidersHandler:   getAvailableRidersHandler,
	}
}

// RegisterRoutes wires all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/progress", s.ProgressOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/deliveries/assign", s.AssignDelivery)
	api.POST("/deliveries/:id/progress", s.ProgressDelivery)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
	api.POST("/deliveries/:id/cancel", s.CancelDelivery)

	api.POST("/ratings", s.SubmitRating)

	api.PUT("/riders/:id/availability", s.SetRiderAvailability)
	api.GET("/riders/available", s.GetAvailableRiders)

	api.POST("/tickets", s.OpenTicket)
	api.POST("/tickets/:id/progress", s.ProgressTicket)
	api.POST("/tickets/:id/messages", s.PostTicketMessage)
}

// Error is the JSON error body returned on failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID  string `json:"customer_id"`
	ServiceType string `json:"service_type"`
	ServiceFee  int64  `json:"service_fee"`
	TotalAmount int64  `json:"total_amount"`
	Street      string `json:"street"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	serviceType, err := kernel.ServiceTypeFromString(req.ServiceType)
	if err != nil {
		return badRequest(ctx, "Invalid service type: "+err.Error())
	}

	serviceFee, err := kernel.NewMoney(req.ServiceFee)
	if err != nil {
		return badRequest(ctx, "Invalid service fee: "+err.Error())
	}

	totalAmount, err := kernel.NewMoney(req.TotalAmount)
	if err != nil {
		return badRequest(ctx, "Invalid total amount: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, serviceType, serviceFee, totalAmount, req.Street)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ProgressRequest is the body for the order, delivery and ticket progress endpoints.
type ProgressRequest struct {
	TargetStatus string `json:"target_status"`
}

// ProgressOrder handles POST /api/v1/orders/:id/progress - moves an order
// to the requested status.
func (s *Server) ProgressOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ProgressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, err := order.StatusFromString(req.TargetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewProgressOrderCommand(orderID, targetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid progress data: "+err.Error())
	}

	if handleErr := s.progressOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order and
// its delivery, when one was assigned.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActiveOrder is one row of the active orders listing.
type ActiveOrder struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	ServiceType string `json:"service_type"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`
	Street      string `json:"street"`
	CreatedAt   string `json:"created_at"`
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders that are
// neither completed nor cancelled, newest first.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	page, pageSize, err := bindPaging(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid paging: "+err.Error())
	}

	query, err := queries.NewGetActiveOrdersQuery(page, pageSize)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrder, len(rows))
	for i, row := range rows {
		response[i] = ActiveOrder{
			ID:          row.ID.String(),
			CustomerID:  row.CustomerID.String(),
			ServiceType: row.ServiceType,
			Status:      row.Status,
			TotalAmount: row.TotalAmount,
			Street:      row.Street,
			CreatedAt:   row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDelivery handles POST /api/v1/deliveries/assign - assigns the best
// available rider to the oldest confirmed order without a delivery.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	cmd := commands.NewAssignDeliveryCommand()

	if handleErr := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoOrderFound) ||
			errors.Is(handleErr, commands.ErrNoAvailableRidersFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: handleErr.Error(),
			})
		}
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ProgressDelivery handles POST /api/v1/deliveries/:id/progress - moves a
// delivery along its happy path.
func (s *Server) ProgressDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req ProgressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, err := delivery.StatusFromString(req.TargetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewProgressDeliveryCommand(deliveryID, targetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid progress data: "+err.Error())
	}

	if handleErr := s.progressDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDeliveryRequest is the body for POST /api/v1/deliveries/:id/complete.
type CompleteDeliveryRequest struct {
	Earnings int64 `json:"earnings"`
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete - completes a
// delivery and locks in the rider's earnings.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req CompleteDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	earnings, err := kernel.NewMoney(req.Earnings)
	if err != nil {
		return badRequest(ctx, "Invalid earnings: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, earnings)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel - cancels a
// delivery and its owning order, unless the order is already terminal.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitRatingRequest is the body for POST /api/v1/ratings.
type SubmitRatingRequest struct {
	OrderID string `json:"order_id"`
	RaterID string `json:"rater_id"`
	RateeID string `json:"ratee_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// SubmitRating handles POST /api/v1/ratings - submits a rating for a
// delivered or completed order.
func (s *Server) SubmitRating(ctx echo.Context) error {
	var req SubmitRatingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	raterID, err := kernel.UUIDFromString(req.RaterID)
	if err != nil {
		return badRequest(ctx, "Invalid rater id: "+err.Error())
	}

	rateeID, err := kernel.UUIDFromString(req.RateeID)
	if err != nil {
		return badRequest(ctx, "Invalid ratee id: "+err.Error())
	}

	score, err := kernel.NewScore(req.Score)
	if err != nil {
		return badRequest(ctx, "Invalid score: "+err.Error())
	}

	ratingID := kernel.NewUUID()
	cmd, err := commands.NewSubmitRatingCommand(ratingID, orderID, raterID, rateeID, score, req.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid rating data: "+err.Error())
	}

	if handleErr := s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: ratingID.String()})
}

// SetAvailabilityRequest is the body for PUT /api/v1/riders/:id/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// SetRiderAvailability handles PUT /api/v1/riders/:id/availability - turns a
// rider's availability on or off.
func (s *Server) SetRiderAvailability(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid rider id: "+err.Error())
	}

	var req SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, req.Available)
	if err != nil {
		return badRequest(ctx, "Invalid availability data: "+err.Error())
	}

	if handleErr := s.setRiderAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AvailableRider is one row of the available riders listing.
type AvailableRider struct {
	RiderID string  `json:"rider_id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
}

// GetAvailableRiders handles GET /api/v1/riders/available - lists available
// riders for a service type, best rated first.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	serviceType, err := kernel.ServiceTypeFromString(ctx.QueryParam("service_type"))
	if err != nil {
		return badRequest(ctx, "Invalid service type: "+err.Error())
	}

	query, err := queries.NewGetAvailableRidersQuery(serviceType)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.getAvailableRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve riders",
		})
	}

	response := make([]AvailableRider, len(rows))
	for i, row := range rows {
		response[i] = AvailableRider{
			RiderID: row.RiderID.String(),
			Name:    row.Name,
			Rating:  row.Rating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OpenTicketRequest is the body for POST /api/v1/tickets.
type OpenTicketRequest struct {
	OpenerID string `json:"opener_id"`
	Subject  string `json:"subject"`
}

// OpenTicket handles POST /api/v1/tickets - opens a support ticket.
func (s *Server) OpenTicket(ctx echo.Context) error {
	var req OpenTicketRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	openerID, err := kernel.UUIDFromString(req.OpenerID)
	if err != nil {
		return badRequest(ctx, "Invalid opener id: "+err.Error())
	}

	ticketID := kernel.NewUUID()
	cmd, err := commands.NewOpenTicketCommand(ticketID, openerID, req.Subject)
	if err != nil {
		return badRequest(ctx, "Invalid ticket data: "+err.Error())
	}

	if handleErr := s.openTicketHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: ticketID.String()})
}

// ProgressTicket handles POST /api/v1/tickets/:id/progress - moves a ticket
// forward in its lifecycle.
func (s *Server) ProgressTicket(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ticket id: "+err.Error())
	}

	var req ProgressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, err := ticket.StatusFromString(req.TargetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewProgressTicketCommand(ticketID, targetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid progress data: "+err.Error())
	}

	if handleErr := s.progressTicketHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PostMessageRequest is the body for POST /api/v1/tickets/:id/messages.
type PostMessageRequest struct {
	SenderID string `json:"sender_id"`
	Body     string `json:"body"`
}

// PostTicketMessage handles POST /api/v1/tickets/:id/messages - appends a
// message to a ticket thread.
func (s *Server) PostTicketMessage(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ticket id: "+err.Error())
	}

	var req PostMessageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	senderID, err := kernel.UUIDFromString(req.SenderID)
	if err != nil {
		return badRequest(ctx, "Invalid sender id: "+err.Error())
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewPostTicketMessageCommand(ticketID, messageID, senderID, req.Body)
	if err != nil {
		return badRequest(ctx, "Invalid message data: "+err.Error())
	}

	if handleErr := s.postTicketMessageHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: messageID.String()})
}

// bindPaging parses the page and page_size query parameters, applying the
// defaults when absent.
func bindPaging(ctx echo.Context) (kernel.Page, kernel.PageSize, error) {
	pageValue := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return kernel.Page{}, kernel.PageSize{}, err
		}
		pageValue = parsed
	}

	sizeValue := 20
	if raw := ctx.QueryParam("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return kernel.Page{}, kernel.PageSize{}, err
		}
		sizeValue = parsed
	}

	page, err := kernel.NewPage(pageValue)
	if err != nil {
		return kernel.Page{}, kernel.PageSize{}, err
	}

	pageSize, err := kernel.NewPageSize(sizeValue)
	if err != nil {
		return kernel.Page{}, kernel.PageSize{}, err
	}

	return page, pageSize, nil
}

// badRequest replies with a 400 and the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain error sentinels to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPrecursorNotMet),
		errors.Is(err, errs.ErrDuplicateRating),
		errors.Is(err, errs.ErrInvariantViolated):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
