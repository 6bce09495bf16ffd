package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
	"github.com/semagency/orderbot/internal/domain/model"
	"github.com/semagency/orderbot/internal/server/http/dto"
)

// OrderHandler manages read-only order endpoints for operators.
type OrderHandler struct {
	facade  OpsFacade
	adminID int64
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OpsFacade, adminID int64) *OrderHandler {
	return &OrderHandler{facade: facade, adminID: adminID}
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Pending handles GET /api/orders/pending.
func (h *OrderHandler) Pending(c *gin.Context) {
	orders, err := h.facade.PendingOrders(c.Request.Context(), h.adminID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListByUser handles GET /api/users/:id/orders.
func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Service:       order.Service,
		Details:       order.Details,
		Colors:        order.Colors,
		Complexity:    order.Complexity,
		PromoCode:     order.PromoCode,
		TotalPrice:    order.TotalPrice,
		UpfrontPrice:  order.UpfrontPrice,
		CreatedAt:     order.CreatedAt,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
	}
}
