package services

import (
	"errors"
	"log"
	"time"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/validation"
	"catalog/pkg/rabbitmq"
)

// ProductService handles the domain logic of the catalog: name uniqueness,
// mutation authorization against the stored password, field merging on
// partial updates and timestamp management. Lifecycle events are published
// best-effort when an MQ client is configured.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // optional, nil disables event publishing
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves all products, newest first, passwords excluded.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID, password included.
// The guard middleware relies on this to authorize later mutations without
// a second read.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product from an already validated request.
// A name collision with any existing product fails with ErrDuplicateName.
func (s *ProductService) CreateProduct(req *validation.CreateProductRequest) (*models.Product, error) {
	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrDuplicateName
	} else if !errors.Is(err, apperrors.ErrProductNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusForSale
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Manager:     req.Manager,
		Password:    req.Password,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   nil, // stays null until the first update
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// UpdateProduct applies a partial update to the guard-attached product after
// verifying the supplied password against the stored one. The name
// uniqueness re-check runs only when the name actually changes and ignores
// the record being updated.
func (s *ProductService) UpdateProduct(existing *models.Product, req *validation.UpdateProductRequest) (*models.Product, error) {
	if req.Password != existing.Password {
		return nil, apperrors.ErrPasswordMismatch
	}

	if req.Name != "" && req.Name != existing.Name {
		other, err := s.repo.GetByName(req.Name)
		if err == nil && other.ID != existing.ID {
			return nil, apperrors.ErrDuplicateName
		}
		if err != nil && !errors.Is(err, apperrors.ErrProductNotFound) {
			return nil, err
		}
	}

	updated := *existing
	mergeProduct(&updated, req)
	now := time.Now()
	updated.UpdatedAt = &now

	if err := s.repo.Update(&updated); err != nil {
		return nil, err
	}

	s.publishEvent("product.updated", &updated)
	return &updated, nil
}

// DeleteProduct removes the guard-attached product after verifying the
// supplied password. Deletion is immediate, there is no soft delete.
func (s *ProductService) DeleteProduct(existing *models.Product, password string) error {
	if password != existing.Password {
		return apperrors.ErrPasswordMismatch
	}

	if err := s.repo.Delete(existing.ID); err != nil {
		return err
	}

	s.publishEvent("product.deleted", existing)
	return nil
}

// mergeProduct copies each supplied field of the request over the product.
// An absent or empty field keeps the stored value; an intentionally-empty
// write is not expressible, matching the update contract.
func mergeProduct(product *models.Product, req *validation.UpdateProductRequest) {
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Manager != "" {
		product.Manager = req.Manager
	}
	if req.Status != "" {
		product.Status = req.Status
	}
}

// publishEvent sends a product lifecycle event when an MQ client is
// configured. Publishing never carries the password and never fails the
// request; failures are only logged.
func (s *ProductService) publishEvent(event string, product *models.Product) {
	if s.mqClient == nil {
		return
	}

	payload := map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"status":    product.Status,
	}
	if err := s.mqClient.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}
