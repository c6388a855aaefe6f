package services_test

import (
	"testing"
	"time"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByName(name string) (*models.Product, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func existingProduct() *models.Product {
	return &models.Product{
		ID:          "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		Name:        "A",
		Description: "d",
		Manager:     "m1",
		Password:    "abc123!@",
		Status:      models.StatusForSale,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	req := &validation.CreateProductRequest{
		Name:        "Laptop",
		Description: "High performance laptop",
		Manager:     "alice",
		Password:    "abc123!@",
	}

	mockRepo.On("GetByName", "Laptop").Return(nil, apperrors.ErrProductNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(req)

	assert.NoError(t, err)
	assert.Equal(t, "Laptop", product.Name)
	assert.Equal(t, models.StatusForSale, product.Status, "status defaults to FOR_SALE when absent")
	assert.False(t, product.CreatedAt.IsZero())
	assert.Nil(t, product.UpdatedAt, "updatedAt stays null until the first update")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_DuplicateName(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByName", "A").Return(existingProduct(), nil).Once()

	product, err := service.CreateProduct(&validation.CreateProductRequest{
		Name:        "A",
		Description: "another description",
		Manager:     "bob",
		Password:    "xyz789!@",
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_PasswordMismatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := existingProduct()
	product, err := service.UpdateProduct(existing, &validation.UpdateProductRequest{
		Manager:  "mallory",
		Password: "wrong123!",
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	assert.Equal(t, "m1", existing.Manager, "failed authorization must not touch the record")
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_UpdateProduct_MergesOnlySuppliedFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := existingProduct()

	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == existing.ID &&
			p.Name == "A" &&
			p.Description == "d" &&
			p.Manager == "m2" &&
			p.UpdatedAt != nil
	})).Return(nil).Once()

	product, err := service.UpdateProduct(existing, &validation.UpdateProductRequest{
		Manager:  "m2",
		Password: "abc123!@",
	})

	assert.NoError(t, err)
	assert.Equal(t, "A", product.Name)
	assert.Equal(t, "d", product.Description)
	assert.Equal(t, "m2", product.Manager)
	assert.NotNil(t, product.UpdatedAt)
	// no name change supplied, so no uniqueness lookup
	mockRepo.AssertNotCalled(t, "GetByName", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NameCollision(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	other := existingProduct()
	other.ID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	other.Name = "B"

	mockRepo.On("GetByName", "B").Return(other, nil).Once()

	product, err := service.UpdateProduct(existingProduct(), &validation.UpdateProductRequest{
		Name:     "B",
		Password: "abc123!@",
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_CollisionCheckIgnoresOwnRecord(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := existingProduct()

	// The name lookup finding the record being updated is not a collision.
	stored := *existing
	stored.Name = "B"
	mockRepo.On("GetByName", "B").Return(&stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.UpdateProduct(existing, &validation.UpdateProductRequest{
		Name:     "B",
		Password: "abc123!@",
	})

	assert.NoError(t, err)
	assert.Equal(t, "B", product.Name)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := existingProduct()

	// wrong password never reaches the repository
	err := service.DeleteProduct(existing, "wrong123!")
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)

	mockRepo.On("Delete", existing.ID).Return(nil).Once()
	err = service.DeleteProduct(existing, "abc123!@")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{ID: "2", Name: "Monitor"},
		{ID: "1", Name: "Keyboard"},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}
