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

type ManageProductsUseCase interface {
	CreateProduct(ctx context.Context, user *domain.User, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, user *domain.User, productID int, req dto.UpdateProductRequest) (*domain.Product, error)
	AssignProduct(ctx context.Context, user *domain.User, clientID int, req dto.AssignProductRequest) error
	UnassignProduct(ctx context.Context, user *domain.User, clientID, productID int) error
}

type BrowseCatalogUseCase interface {
	ListClientProducts(ctx context.Context, user *domain.User, clientID int, category, search string) (*dto.ClientProductsResponse, error)
	SearchProducts(ctx context.Context, user *domain.User, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error)
}

type CatalogController struct {
	manageUC ManageProductsUseCase
	browseUC BrowseCatalogUseCase
	logger   *zap.Logger
}

func NewCatalogController(manageUC ManageProductsUseCase, browseUC BrowseCatalogUseCase, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		manageUC: manageUC,
		browseUC: browseUC,
		logger:   logger,
	}
}

func (c *CatalogController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	product, err := c.manageUC.CreateProduct(r.Context(), user, req)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toProductResponse(product))
}

func (c *CatalogController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	productID, ok := c.parsePositiveInt(w, chi.URLParam(r, "productID"), "productID")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	product, err := c.manageUC.UpdateProduct(r.Context(), user, productID, req)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (c *CatalogController) SearchProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	var req dto.SearchProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateSearchRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.browseUC.SearchProducts(r.Context(), user, req)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *CatalogController) ListClientProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	clientID, ok := c.parsePositiveInt(w, chi.URLParam(r, "clientID"), "clientID")
	if !ok {
		return
	}

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	resp, err := c.browseUC.ListClientProducts(r.Context(), user, clientID, category, search)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *CatalogController) AssignProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	clientID, ok := c.parsePositiveInt(w, chi.URLParam(r, "clientID"), "clientID")
	if !ok {
		return
	}

	var req dto.AssignProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.manageUC.AssignProduct(r.Context(), user, clientID, req); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *CatalogController) UnassignProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	clientID, ok := c.parsePositiveInt(w, chi.URLParam(r, "clientID"), "clientID")
	if !ok {
		return
	}
	productID, ok := c.parsePositiveInt(w, chi.URLParam(r, "productID"), "productID")
	if !ok {
		return
	}

	if err := c.manageUC.UnassignProduct(r.Context(), user, clientID, productID); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *CatalogController) validateSearchRequest(req dto.SearchProductsRequest) error {
	if req.ClientID <= 0 {
		msg := "clientId must be a positive integer"
		if req.ClientID == 0 {
			msg = "clientId is required"
		}
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "clientId",
			Message: msg,
		})
	}

	if len(req.ProductIDs) == 0 {
		return apperrors.NewValidationError("productIds is required", apperrors.ValidationDetail{
			Field:   "productIds",
			Message: "productIds must not be empty",
		})
	}

	if len(req.ProductIDs) > 100 {
		msg := "productIds exceeds maximum of 100"
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "productIds",
			Message: msg,
		})
	}

	for _, id := range req.ProductIDs {
		if id <= 0 {
			msg := "each productId must be a positive integer"
			return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
				Field:   "productIds",
				Message: msg,
			})
		}
	}

	return nil
}

func (c *CatalogController) parsePositiveInt(w http.ResponseWriter, raw, field string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid "+field, apperrors.ValidationDetail{
			Field:   field,
			Message: field + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func toProductResponse(p *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Subcategory:    p.Subcategory,
		BasePrice:      p.BasePrice,
		UnitsPerCase:   p.UnitsPerCase,
		CasePrice:      p.CasePrice,
		SpecAttributes: p.SpecAttributes,
		ImageURL:       p.ImageURL,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type errorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *CatalogController) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
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

func (c *CatalogController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code, message string) {
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

func (c *CatalogController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *CatalogController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
