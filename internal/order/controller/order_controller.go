package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"candela/internal/auth"
	"candela/internal/domain"
	"candela/internal/dto"
	apperrors "candela/internal/errors"
)

type SubmitOrderUseCase interface {
	Submit(ctx context.Context, user *domain.User, cartID, location string) (*domain.Order, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, user *domain.User, orderID uint, status string) (*domain.Order, error)
}

type DuplicateOrderUseCase interface {
	Duplicate(ctx context.Context, user *domain.User, orderID uint) (*domain.Order, error)
}

type QueryOrdersUseCase interface {
	GetOrder(ctx context.Context, user *domain.User, orderID uint) (*domain.Order, error)
	ListOrders(ctx context.Context, user *domain.User, clientID *int, status *string) ([]domain.Order, error)
}

type OrderController struct {
	submitUC    SubmitOrderUseCase
	statusUC    UpdateStatusUseCase
	duplicateUC DuplicateOrderUseCase
	queryUC     QueryOrdersUseCase
	logger      *zap.Logger
}

func NewOrderController(
	submitUC SubmitOrderUseCase,
	statusUC UpdateStatusUseCase,
	duplicateUC DuplicateOrderUseCase,
	queryUC QueryOrdersUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		submitUC:    submitUC,
		statusUC:    statusUC,
		duplicateUC: duplicateUC,
		queryUC:     queryUC,
		logger:      logger,
	}
}

func (c *OrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	var req dto.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.CartID == "" {
		c.writeValidationError(w, "cartId is required", apperrors.ValidationDetail{
			Field:   "cartId",
			Message: "cartId must not be empty",
		})
		return
	}

	order, err := c.submitUC.Submit(r.Context(), user, req.CartID, req.Location)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	orderID, ok := c.parseOrderID(w, r)
	if !ok {
		return
	}

	order, err := c.queryUC.GetOrder(r.Context(), user, orderID)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	var clientID *int
	if raw := r.URL.Query().Get("clientId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.writeValidationError(w, "invalid clientId", apperrors.ValidationDetail{
				Field:   "clientId",
				Message: "clientId must be a positive integer",
			})
			return
		}
		clientID = &id
	}

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	orders, err := c.queryUC.ListOrders(r.Context(), user, clientID, status)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	summaries := make([]dto.OrderSummaryDTO, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, dto.OrderSummaryDTO{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			ClientID:    order.ClientID,
			Location:    order.Location,
			Status:      order.Status,
			StatusLabel: domain.StatusLabel(order.Status),
			Total:       order.Total,
			CreatedAt:   order.CreatedAt,
		})
	}

	c.writeJSON(w, http.StatusOK, dto.OrderListResponse{Orders: summaries})
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	orderID, ok := c.parseOrderID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.statusUC.UpdateStatus(r.Context(), user, orderID, req.Status)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (c *OrderController) DuplicateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	orderID, ok := c.parseOrderID(w, r)
	if !ok {
		return
	}

	order, err := c.duplicateUC.Duplicate(r.Context(), user, orderID)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (c *OrderController) parseOrderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "orderID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.writeValidationError(w, "invalid orderID", apperrors.ValidationDetail{
			Field:   "orderID",
			Message: "orderID must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func toOrderResponse(order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemDTO{
			ID:          item.ID,
			Location:    item.Location,
			ProductID:   item.ProductID,
			ItemCode:    item.ItemCode,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	return dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		ClientID:    order.ClientID,
		UserID:      order.UserID,
		Location:    order.Location,
		Status:      order.Status,
		StatusLabel: domain.StatusLabel(order.Status),
		Subtotal:    order.Subtotal,
		TaxAmount:   order.TaxAmount,
		TaxRate:     order.TaxRate,
		Total:       order.Total,
		Items:       items,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

type errorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *OrderController) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
		return
	}

	if _, ok := apperrors.IsForbiddenError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusForbidden, "FORBIDDEN", err.Error())
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code, message string) {
	c.writeJSON(w, statusCode, errorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
