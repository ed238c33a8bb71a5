package client

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"candela/internal/auth"
	"candela/internal/domain"
	"candela/internal/dto"
	apperrors "candela/internal/errors"
)

type Controller struct {
	repo   Repository
	logger *zap.Logger
}

func NewController(repo Repository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

func (c *Controller) CreateClient(w http.ResponseWriter, r *http.Request) {
	_, err := auth.RequireOwner(r.Context())
	if err != nil {
		c.writeAuthError(w, err)
		return
	}

	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Name == "" {
		c.writeValidationError(w, "name is required", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must not be empty",
		})
		return
	}

	newClient := &domain.Client{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
	}

	id, err := c.repo.Insert(r.Context(), newClient)
	if err != nil {
		c.logger.Error("create client failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	created, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		c.logger.Error("load created client failed", zap.Int("clientId", id), zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusCreated, toClientResponse(created))
}

func (c *Controller) GetClient(w http.ResponseWriter, r *http.Request) {
	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.writeAuthError(w, err)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "clientID"))
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid clientID", apperrors.ValidationDetail{
			Field:   "clientID",
			Message: "clientID must be a positive integer",
		})
		return
	}

	if !user.CanAccessClient(id) {
		c.writeAuthError(w, apperrors.NewForbiddenError("client belongs to another tenant"))
		return
	}

	found, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": err.Error(),
			})
			return
		}
		c.logger.Error("get client failed", zap.Int("clientId", id), zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusOK, toClientResponse(found))
}

func (c *Controller) ListClients(w http.ResponseWriter, r *http.Request) {
	_, err := auth.RequireOwner(r.Context())
	if err != nil {
		c.writeAuthError(w, err)
		return
	}

	clients, err := c.repo.List(r.Context())
	if err != nil {
		c.logger.Error("list clients failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	resp := dto.ClientListResponse{Clients: make([]dto.ClientResponse, 0, len(clients))}
	for i := range clients {
		resp.Clients = append(resp.Clients, toClientResponse(&clients[i]))
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func toClientResponse(c *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		Address:      c.Address,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (c *Controller) writeAuthError(w http.ResponseWriter, err error) {
	if _, ok := apperrors.IsForbiddenError(err); ok {
		c.writeJSON(w, http.StatusForbidden, map[string]string{
			"error":   "FORBIDDEN",
			"message": err.Error(),
		})
		return
	}
	c.writeJSON(w, http.StatusUnauthorized, map[string]string{
		"error":   "UNAUTHORIZED",
		"message": err.Error(),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeInternalError(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
