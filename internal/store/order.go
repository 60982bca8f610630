package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wamisho-d/ecommerece/internal/models"
)

type LineItem struct {
	ProductID uint `json:"product_id"`
	Quantity  uint `json:"quantity"`
}

// PlaceOrder creates the order header and one line per item inside a single
// transaction. Every product is loaded inside the transaction both to
// validate that it exists and to price the line; any failure rolls the whole
// order back, header included. Returns the persisted header and the order
// total (price times quantity summed over all lines).
func (s *Store) PlaceOrder(customerID uint, items []LineItem) (models.Order, float64, error) {
	if len(items) == 0 {
		return models.Order{}, 0, ErrNoLineItems
	}
	for _, item := range items {
		if item.Quantity == 0 {
			return models.Order{}, 0, ErrInvalidQuantity
		}
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return models.Order{}, 0, tx.Error
	}

	order := models.Order{
		OrderDate:  time.Now().UTC(),
		CustomerID: customerID,
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return models.Order{}, 0, err
	}

	var lines []models.OrderLine
	var total float64

	for _, item := range items {

		var product models.Product

		if err := tx.First(&product, item.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Order{}, 0, &ProductNotFoundError{ID: item.ProductID}
			}
			return models.Order{}, 0, err
		}

		lines = append(lines, models.OrderLine{
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  item.Quantity,
		})
		total += product.Price * float64(item.Quantity)
	}

	if err := tx.CreateInBatches(&lines, len(lines)).Error; err != nil {
		tx.Rollback()
		return models.Order{}, 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return models.Order{}, 0, err
	}

	return order, total, nil
}

func (s *Store) GetOrder(id uint) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// GetOrderLines fetches the lines with an explicit order_id query rather
// than relationship preloading.
func (s *Store) GetOrderLines(orderID uint) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	if err := s.db.Where("order_id = ?", orderID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Store) CountOrdersForCustomer(customerID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Order{}).Where("customer_id = ?", customerID).Count(&n).Error
	return n, err
}
