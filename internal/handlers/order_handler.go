package handlers

import (
	"net/http"
	"strconv"

	"canteen/internal/middleware"
	"canteen/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder creates an order and returns the receipt fields, including the
// pickup token.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req struct {
		ItemID     uint   `json:"item_id"`
		PickupTime string `json:"pickup_time"`
		PickupAMPM string `json:"pickup_ampm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	ident, _ := middleware.IdentityFrom(c)
	order, err := h.orderService.PlaceOrder(ident, req.ItemID, req.PickupTime, req.PickupAMPM)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderView(order, false))
}

func (h *OrderHandler) RecordPayment(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		return
	}

	var req struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	ident, _ := middleware.IdentityFrom(c)
	order, err := h.orderService.RecordPayment(ident, orderID, req.Method)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"payment_status": order.PaymentStatus,
		"method":         order.PaymentMethod,
	})
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		return
	}

	ident, _ := middleware.IdentityFrom(c)
	if err := h.orderService.CancelOrder(ident, orderID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetReceipt returns a single order; owner or admin only.
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		return
	}

	ident, _ := middleware.IdentityFrom(c)
	order, err := h.orderService.GetOrder(ident, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderView(order, ident.IsAdmin()))
}

// ListMyOrders returns the caller's order history, newest first, with the
// running total of paid orders.
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	orders, err := h.orderService.ListUserOrders(ident.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	totalSpent, err := h.orderService.TotalSpent(ident.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      newOrderViews(orders, false),
		"total_spent": totalSpent,
	})
}

// ListAllOrders is the admin listing, optionally filtered with ?status=.
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	orders, err := h.orderService.ListAllOrders(ident, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": newOrderViews(orders, true)})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := orderIDParam(c)
	if err != nil {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	ident, _ := middleware.IdentityFrom(c)
	order, err := h.orderService.UpdateStatus(ident, orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderView(order, true))
}

func orderIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, err
	}
	return uint(id), nil
}
