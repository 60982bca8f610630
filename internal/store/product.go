package store

import (
	"github.com/wamisho-d/ecommerece/internal/models"
)

func (s *Store) CreateProduct(prod *models.Product) error {
	return s.db.Create(prod).Error
}

func (s *Store) GetProduct(id uint) (models.Product, error) {
	var prod models.Product
	if err := s.db.First(&prod, id).Error; err != nil {
		return models.Product{}, err
	}
	return prod, nil
}

func (s *Store) UpdateProduct(id uint, upd models.Product) (models.Product, error) {
	var prod models.Product
	if err := s.db.First(&prod, id).Error; err != nil {
		return models.Product{}, err
	}

	prod.Name = upd.Name
	prod.Price = upd.Price

	if err := s.db.Save(&prod).Error; err != nil {
		return models.Product{}, err
	}
	return prod, nil
}

func (s *Store) DeleteProduct(id uint) error {
	return s.db.Delete(&models.Product{}, id).Error
}

func (s *Store) ListProducts() ([]models.Product, error) {
	var prods []models.Product
	if err := s.db.Find(&prods).Error; err != nil {
		return nil, err
	}
	return prods, nil
}
