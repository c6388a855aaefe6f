package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// GetByID returns the record including its password so the mutation guard
// can authorize updates and deletes without a second read. GetAll excludes
// the password at the query level and orders by creation time, newest first.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
