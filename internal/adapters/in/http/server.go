// Package http provides the inbound HTTP adapter: echo handlers that translate
// requests into commands and queries and map domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"dragonpath/internal/core/application/usecases/commands"
	"dragonpath/internal/core/application/usecases/queries"
	"dragonpath/internal/core/domain/model/kernel"
	"dragonpath/internal/core/domain/model/order"
	"dragonpath/internal/core/domain/model/payment"
	"dragonpath/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error payload of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one purchased item in an order placement request.
type LineItemRequest struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// AddressRequest is the shipping destination in an order placement request.
type AddressRequest struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// CreateOrderRequest is the payload of POST /api/v1/orders.
type CreateOrderRequest struct {
	BuyerID       string            `json:"buyerId"`
	SellerID      string            `json:"sellerId"`
	Items         []LineItemRequest `json:"items"`
	Address       AddressRequest    `json:"address"`
	PaymentMethod string            `json:"paymentMethod"`
}

// CreateOrderResponse returns the identifier of a newly placed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ConfirmPaymentRequest is the payload of POST /api/v1/orders/:id/payment.
type ConfirmPaymentRequest struct {
	TransactionID string `json:"transactionId"`
}

// RecordMilestoneRequest is the payload of POST /api/v1/orders/:id/milestones.
type RecordMilestoneRequest struct {
	Milestone string `json:"milestone"`
}

// AttachEvidenceRequest is the payload of POST /api/v1/orders/:id/condition/evidence.
type AttachEvidenceRequest struct {
	PhotoURLs []string `json:"photoUrls"`
	VideoURL  string   `json:"videoUrl"`
}

// ConfirmReceiptRequest is the payload of POST /api/v1/orders/:id/condition/confirm.
type ConfirmReceiptRequest struct {
	Notes string `json:"notes"`
}

// OrderSummary is one row of the order history listing.
type OrderSummary struct {
	ID            string  `json:"id"`
	BuyerID       string  `json:"buyerId"`
	SellerID      string  `json:"sellerId"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Total         string  `json:"total"`
	CreatedAt     string  `json:"createdAt"`
	DeliveredAt   *string `json:"deliveredAt,omitempty"`
}

// PaymentMethodResponse is one entry of the payment method catalog.
type PaymentMethodResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Region string `json:"region"`
	Kind   string `json:"kind"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler             commands.CreateOrderCommandHandler
	confirmPaymentHandler          commands.ConfirmPaymentCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler
	releaseEscrowHandler           commands.ReleaseEscrowCommandHandler
	recordMilestoneHandler         commands.RecordMilestoneCommandHandler
	attachConditionEvidenceHandler commands.AttachConditionEvidenceCommandHandler
	confirmLogisticsReceiptHandler commands.ConfirmLogisticsReceiptCommandHandler

	getUserOrdersHandler queries.GetUserOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	releaseEscrowHandler commands.ReleaseEscrowCommandHandler,
	recordMilestoneHandler commands.RecordMilestoneCommandHandler,
	attachConditionEvidenceHandler commands.AttachConditionEvidenceCommandHandler,
	confirmLogisticsReceiptHandler commands.ConfirmLogisticsReceiptCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		confirmPaymentHandler:          confirmPaymentHandler,
		cancelOrderHandler:             cancelOrderHandler,
		releaseEscrowHandler:           releaseEscrowHandler,
		recordMilestoneHandler:         recordMilestoneHandler,
		attachConditionEvidenceHandler: attachConditionEvidenceHandler,
		confirmLogisticsReceiptHandler: confirmLogisticsReceiptHandler,
		getUserOrdersHandler:           getUserOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/payment-methods", s.GetPaymentMethods)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/payment", s.ConfirmPayment)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/release", s.ReleaseEscrow)
	api.POST("/orders/:id/milestones", s.RecordMilestone)
	api.POST("/orders/:id/condition/evidence", s.AttachConditionEvidence)
	api.POST("/orders/:id/condition/confirm", s.ConfirmLogisticsReceipt)

	e.GET("/health", s.Health)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetPaymentMethods handles GET /api/v1/payment-methods - lists the payment
// method catalog in display order.
func (s *Server) GetPaymentMethods(ctx echo.Context) error {
	methods := payment.Methods()
	response := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		response[i] = PaymentMethodResponse{
			ID:     m.ID(),
			Name:   m.Name(),
			Icon:   m.Icon(),
			Region: m.Region(),
			Kind:   m.Kind().String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return badRequest(ctx, "Invalid buyer id: "+err.Error())
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return badRequest(ctx, "Invalid seller id: "+err.Error())
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, itemErr := kernel.UUIDFromString(itemReq.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid product id: "+itemErr.Error())
		}
		unitPrice, itemErr := kernel.NewMoneyFromString(itemReq.UnitPrice)
		if itemErr != nil {
			return badRequest(ctx, "Invalid unit price: "+itemErr.Error())
		}
		item, itemErr := order.NewLineItem(productID, itemReq.Name, itemReq.ImageURL, itemReq.Quantity, unitPrice)
		if itemErr != nil {
			return badRequest(ctx, "Invalid line item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		req.Address.Name,
		req.Address.Line1,
		req.Address.Line2,
		req.Address.City,
		req.Address.State,
		req.Address.PostalCode,
		req.Address.Country,
		req.Address.Phone,
	)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, buyerID, sellerID, items, address, req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment - confirms the gateway
// charge and moves the funds into escrow.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ConfirmPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, req.TransactionID)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels with full refund.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseEscrow handles POST /api/v1/orders/:id/release - confirms receipt and
// releases the held funds.
func (s *Server) ReleaseEscrow(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewReleaseEscrowCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.releaseEscrowHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordMilestone handles POST /api/v1/orders/:id/milestones - advances fulfillment.
func (s *Server) RecordMilestone(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RecordMilestoneRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	milestone, err := order.StatusFromString(req.Milestone)
	if err != nil {
		return badRequest(ctx, "Invalid milestone: "+err.Error())
	}

	cmd, err := commands.NewRecordMilestoneCommand(orderID, milestone)
	if err != nil {
		return badRequest(ctx, "Invalid milestone data: "+err.Error())
	}

	if handleErr := s.recordMilestoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachConditionEvidence handles POST /api/v1/orders/:id/condition/evidence -
// records seller condition documentation.
func (s *Server) AttachConditionEvidence(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AttachEvidenceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAttachConditionEvidenceCommand(orderID, req.PhotoURLs, req.VideoURL)
	if err != nil {
		return badRequest(ctx, "Invalid evidence data: "+err.Error())
	}

	if handleErr := s.attachConditionEvidenceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmLogisticsReceipt handles POST /api/v1/orders/:id/condition/confirm -
// logistics confirms the documented package condition.
func (s *Server) ConfirmLogisticsReceipt(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ConfirmReceiptRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmLogisticsReceiptCommand(orderID, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	if handleErr := s.confirmLogisticsReceiptHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders?userId=...&role=... - order history.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetUserOrdersQuery(userID, ctx.QueryParam("role"))
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	rows, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderSummary, len(rows))
	for i, row := range rows {
		summary := OrderSummary{
			ID:            row.ID.String(),
			BuyerID:       row.BuyerID.String(),
			SellerID:      row.SellerID.String(),
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			Total:         row.Total.StringFixed(2),
			CreatedAt:     row.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
		if row.DeliveredAt != nil {
			deliveredAt := row.DeliveredAt.UTC().Format("2006-01-02T15:04:05Z07:00")
			summary.DeliveredAt = &deliveredAt
		}
		response[i] = summary
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures to HTTP status codes: missing orders to 404,
// rejected state transitions and denied cancellations to 409, validation
// failures to 400, anything else to 500.
func domainError(ctx echo.Context, err error) error {
	var denied *order.CancellationNotAllowedError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &denied),
		errors.Is(err, order.ErrOrderNotYetDelivered),
		errors.Is(err, order.ErrConditionNotConfirmed),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
