package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wamisho-d/ecommerece/internal/models"
)

func (s *Store) CreateCustomer(cust *models.Customer) error {
	return s.db.Create(cust).Error
}

func (s *Store) GetCustomer(id uint) (models.Customer, error) {
	var cust models.Customer
	if err := s.db.First(&cust, id).Error; err != nil {
		return models.Customer{}, err
	}
	return cust, nil
}

// UpdateCustomer overwrites name, email and phone number in place. A missing
// id propagates gorm.ErrRecordNotFound without mutating anything.
func (s *Store) UpdateCustomer(id uint, upd models.Customer) (models.Customer, error) {
	var cust models.Customer
	if err := s.db.First(&cust, id).Error; err != nil {
		return models.Customer{}, err
	}

	cust.Name = upd.Name
	cust.Email = upd.Email
	cust.PhoneNumber = upd.PhoneNumber

	if err := s.db.Save(&cust).Error; err != nil {
		return models.Customer{}, err
	}
	return cust, nil
}

// DeleteCustomer removes the customer, or does nothing if it does not exist.
// A customer that still owns an account or any order is not deleted;
// ErrCustomerHasDependents is returned instead.
func (s *Store) DeleteCustomer(id uint) error {
	var cust models.Customer
	if err := s.db.First(&cust, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var accounts int64
	if err := s.db.Model(&models.CustomerAccount{}).Where("customer_id = ?", id).Count(&accounts).Error; err != nil {
		return err
	}
	var orders int64
	if err := s.db.Model(&models.Order{}).Where("customer_id = ?", id).Count(&orders).Error; err != nil {
		return err
	}
	if accounts > 0 || orders > 0 {
		return ErrCustomerHasDependents
	}

	return s.db.Delete(&models.Customer{}, id).Error
}
