package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wamisho-d/ecommerece/internal/models"
)

// CreateAccount creates the credentials record for an existing customer.
// A missing customer propagates gorm.ErrRecordNotFound; a second account for
// the same customer fails on the unique index like any duplicate.
func (s *Store) CreateAccount(customerID uint, username, password string) (models.CustomerAccount, error) {
	var cust models.Customer
	if err := s.db.First(&cust, customerID).Error; err != nil {
		return models.CustomerAccount{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.CustomerAccount{}, err
	}

	acct := models.CustomerAccount{
		Username:     username,
		PasswordHash: string(hash),
		CustomerID:   customerID,
	}
	if err := s.db.Create(&acct).Error; err != nil {
		return models.CustomerAccount{}, err
	}
	return acct, nil
}

func (s *Store) GetAccount(id uint) (models.CustomerAccount, error) {
	var acct models.CustomerAccount
	if err := s.db.First(&acct, id).Error; err != nil {
		return models.CustomerAccount{}, err
	}
	return acct, nil
}

func (s *Store) FindAccountByUsername(username string) (models.CustomerAccount, error) {
	var acct models.CustomerAccount
	if err := s.db.Where("username = ?", username).First(&acct).Error; err != nil {
		return models.CustomerAccount{}, err
	}
	return acct, nil
}

// UpdateAccount overwrites the username and re-hashes the given password.
func (s *Store) UpdateAccount(id uint, username, password string) (models.CustomerAccount, error) {
	var acct models.CustomerAccount
	if err := s.db.First(&acct, id).Error; err != nil {
		return models.CustomerAccount{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.CustomerAccount{}, err
	}

	acct.Username = username
	acct.PasswordHash = string(hash)

	if err := s.db.Save(&acct).Error; err != nil {
		return models.CustomerAccount{}, err
	}
	return acct, nil
}

func (s *Store) DeleteAccount(id uint) error {
	err := s.db.Delete(&models.CustomerAccount{}, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
