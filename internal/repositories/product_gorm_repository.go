package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/apperrors"
	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products, newest first. The password column is
// excluded from the query itself, not just from serialization.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Select("id", "name", "description", "manager", "status", "created_at", "updated_at").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID, password included.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByName retrieves a single product by its name, for uniqueness checks.
func (r *GORMProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by name %s: %w", name, err)
	}
	return &product, nil
}

// Create inserts a new product, generating its ID when absent.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists every field of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save writes all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not surface ErrRecordNotFound for a missing row,
		// so RowsAffected is the only signal.
		return apperrors.ErrProductNotFound
	}
	return nil
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}
