package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wamisho-d/ecommerece/internal/notifier"
	"github.com/wamisho-d/ecommerece/internal/store"
)

type OrderHandler struct {
	Store    *store.Store
	Notifier *notifier.Notifier
}

type PlaceOrderRequest struct {
	Items []store.LineItem `json:"items"`
}

// POST /orders/:customer_id
func (h *OrderHandler) Place(c *gin.Context) {
	customerID, ok := parseID(c, "customer_id")
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	customer, err := h.Store.GetCustomer(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Customer not found with ID: %d", customerID)})
			return
		}
		writeStoreError(c, err)
		return
	}

	order, total, err := h.Store.PlaceOrder(customerID, req.Items)
	if err != nil {
		var pnf *store.ProductNotFoundError
		switch {
		case errors.Is(err, store.ErrNoLineItems):
			c.JSON(http.StatusBadRequest, gin.H{"error": "items required"})
		case errors.Is(err, store.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive integer"})
		case errors.As(err, &pnf):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product not found with ID: %d", pnf.ID)})
		default:
			writeStoreError(c, err)
		}
		return
	}

	if h.Notifier != nil {
		h.Notifier.OrderPlaced(customer, order.ID, total)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "order placed successfully", "order": order})
}

// GET /orders/:id — the header plus its lines, fetched by an explicit
// order_id query.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.Store.GetOrder(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order not found with ID: %d", id)})
			return
		}
		writeStoreError(c, err)
		return
	}

	lines, err := h.Store.GetOrderLines(id)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "items": lines})
}
