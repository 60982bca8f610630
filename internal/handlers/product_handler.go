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

type ProductHandler struct {
	Store *store.Store
}

// Price is a pointer so that a free product (price 0) still passes the
// required check.
type ProductRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required,gte=0"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		Name:  req.Name,
		Price: *req.Price,
	}

	if err := h.Store.CreateProduct(&product); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.Store.GetProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product not found with ID: %d", id)})
			return
		}
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Store.UpdateProduct(id, models.Product{
		Name:  req.Name,
		Price: *req.Price,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product not found with ID: %d", id)})
			return
		}
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Store.DeleteProduct(id); err != nil {
		writeStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Store.ListProducts()
	if err != nil {
		writeStoreError(c, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}
