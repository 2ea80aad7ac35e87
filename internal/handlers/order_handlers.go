package handlers

import (
	"errors"
	"net/http"

	"shoplite/internal/common"
	"shoplite/internal/models"
	"shoplite/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// OrderHandlers handles HTTP requests for order placement and history
type OrderHandlers struct {
	orderService services.OrderService
}

func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

type placeOrderRequest struct {
	UserID uuid.UUID          `json:"userId"`
	Items  []models.OrderLine `json:"items"`
	Total  float64            `json:"total"`
}

// PlaceOrder writes the order and its line items in one transaction. Any
// validation failure rejects the whole order before a row is written.
func (h *OrderHandlers) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := h.orderService.PlaceOrder(c.Request().Context(), req.UserID, req.Items, req.Total)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return errorJSON(c, http.StatusBadRequest, "Invalid order data")
		}
		log.Errorf("order placement failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Order placed successfully",
		"orderId": orderID,
	})
}

// GetUserOrders returns a user's order history, newest first. A user with
// no orders gets an empty array.
func (h *OrderHandlers) GetUserOrders(c echo.Context) error {
	userID, err := common.ValidateUUID(c.Param("userId"), "user id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid user id")
	}

	orders, err := h.orderService.GetOrdersForUser(c.Request().Context(), userID)
	if err != nil {
		log.Errorf("order history lookup failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error")
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	return c.JSON(http.StatusOK, map[string]any{"data": orders})
}

// GetOrderItems returns the line items recorded for one order.
func (h *OrderHandlers) GetOrderItems(c echo.Context) error {
	orderID, err := common.ValidateUUID(c.Param("orderId"), "order id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid order id")
	}

	items, err := h.orderService.GetOrderItems(c.Request().Context(), orderID)
	if err != nil {
		log.Errorf("order items lookup failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error")
	}
	if items == nil {
		items = []*models.OrderItem{}
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}
