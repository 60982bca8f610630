package models

type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"not null" json:"phone_number"`
}

// CustomerAccount holds the login credentials for a customer. The unique
// index on CustomerID keeps it to one account per customer.
type CustomerAccount struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	CustomerID   uint   `gorm:"uniqueIndex;not null" json:"customer_id"`
}
