package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wamisho-d/ecommerece/internal/models"
	"github.com/wamisho-d/ecommerece/internal/store"
)

type CustomerHandler struct {
	Store *store.Store
}

type CustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if err := h.Store.CreateCustomer(&customer); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, err := h.Store.GetCustomer(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Customer not found with ID: %d", id)})
			return
		}
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Store.UpdateCustomer(id, models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Customer not found with ID: %d", id)})
			return
		}
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete is idempotent for absent ids but refuses to remove a customer that
// still has an account or orders.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Store.DeleteCustomer(id); err != nil {
		if errors.Is(err, store.ErrCustomerHasDependents) {
			c.JSON(http.StatusConflict, gin.H{"error": "customer still has an account or orders"})
			return
		}
		writeStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
