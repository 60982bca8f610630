package models

import "time"

type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderDate  time.Time `gorm:"not null" json:"order_date"` // set at creation, never updated
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
}

// OrderLine links an order to a product with a quantity. The composite
// primary key means a product appears at most once per order.
type OrderLine struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  uint `gorm:"not null" json:"quantity"`
}
