package cart

import (
	"context"
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

// ProductResolver resolves products a client is allowed to buy, with
// effective prices already applied.
type ProductResolver interface {
	GetClientProductsByIDs(ctx context.Context, clientID int, ids []int) ([]domain.ClientProduct, []int, error)
}

type Controller struct {
	store      *Store
	resolver   ProductResolver
	cartHeader string
	logger     *zap.Logger
}

func NewController(store *Store, resolver ProductResolver, cartHeader string, logger *zap.Logger) *Controller {
	return &Controller{
		store:      store,
		resolver:   resolver,
		cartHeader: cartHeader,
		logger:     logger,
	}
}

// cartID falls back to the user id, so a user without the cart header still
// gets one stable cart per session.
func (c *Controller) cartID(r *http.Request, user *domain.User) string {
	if id := r.Header.Get(c.cartHeader); id != "" {
		return id
	}
	return user.ID
}

func (c *Controller) GetCart(w http.ResponseWriter, r *http.Request) {
	user, clientID, ok := c.requireShopper(w, r)
	if !ok {
		return
	}

	cart := c.store.Get(c.cartID(r, user), clientID)
	c.writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (c *Controller) AddItem(w http.ResponseWriter, r *http.Request) {
	user, clientID, ok := c.requireShopper(w, r)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.ProductID <= 0 {
		c.writeValidationError(w, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	found, _, err := c.resolver.GetClientProductsByIDs(r.Context(), clientID, []int{req.ProductID})
	if err != nil {
		c.logger.Error("resolving product for cart failed", zap.Int("productId", req.ProductID), zap.Error(err))
		c.writeError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "failed to load product")
		return
	}
	if len(found) == 0 {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", "product is not available to this client")
		return
	}

	cart := c.store.Get(c.cartID(r, user), clientID)
	if err := cart.Add(found[0].Product, found[0].EffectivePrice()); err != nil {
		c.handleCartError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (c *Controller) IncrementItem(w http.ResponseWriter, r *http.Request) {
	c.mutateLine(w, r, func(cart *Cart, productID int) error {
		return cart.Increment(productID)
	})
}

func (c *Controller) DecrementItem(w http.ResponseWriter, r *http.Request) {
	c.mutateLine(w, r, func(cart *Cart, productID int) error {
		return cart.Decrement(productID)
	})
}

func (c *Controller) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c.mutateLine(w, r, func(cart *Cart, productID int) error {
		return cart.Remove(productID)
	})
}

func (c *Controller) mutateLine(w http.ResponseWriter, r *http.Request, op func(*Cart, int) error) {
	user, _, ok := c.requireShopper(w, r)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil || productID <= 0 {
		c.writeValidationError(w, "invalid productID", apperrors.ValidationDetail{
			Field:   "productID",
			Message: "productID must be a positive integer",
		})
		return
	}

	cart, found := c.store.Find(c.cartID(r, user))
	if !found {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", "cart is empty")
		return
	}

	if err := op(cart, productID); err != nil {
		c.handleCartError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toCartResponse(cart))
}

// requireShopper extracts the current user and the client they shop for.
// Owners have no client of their own, so cart endpoints are client-user
// territory.
func (c *Controller) requireShopper(w http.ResponseWriter, r *http.Request) (*domain.User, int, bool) {
	user, err := auth.UserFrom(r.Context())
	if err != nil {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
		return nil, 0, false
	}

	if user.ClientID == nil {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", "carts require a client-scoped user")
		return nil, 0, false
	}

	return user, *user.ClientID, true
}

func (c *Controller) handleCartError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	c.logger.Error("cart operation failed", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func toCartResponse(cart *Cart) dto.CartResponse {
	lines := make([]dto.CartLineDTO, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, dto.CartLineDTO{
			ProductID:   line.ProductID,
			ItemCode:    line.ItemCode,
			Description: line.Description,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal,
		})
	}

	return dto.CartResponse{
		CartID:    cart.ID,
		ClientID:  cart.ClientID,
		Lines:     lines,
		Subtotal:  cart.Subtotal,
		TaxAmount: cart.TaxAmount,
		Total:     cart.Total,
	}
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

func (c *Controller) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
