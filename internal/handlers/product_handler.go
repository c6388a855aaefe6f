package handlers

import (
	"log"

	"catalog/internal/apperrors"
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products. The flow on every
// route is guard (id-addressed routes only) -> validate -> service ->
// envelope; any error short-circuits to the centralized ErrorHandler.
type ProductHandler struct {
	service   *services.ProductService
	validator *validation.ProductValidator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:   service,
		validator: validation.NewProductValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	guard := middleware.ProductGuard(h.service)

	products := router.Group("/products")
	products.Post("/", h.HandleCreateProduct)
	products.Get("/", h.HandleGetProducts)
	products.Get("/:id", guard, h.HandleGetProductByID)
	products.Patch("/:id", guard, h.HandleUpdateProduct)
	products.Delete("/:id", guard, h.HandleDeleteProduct)
}

// HandleRoot answers the service greeting.
func HandleRoot(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, "Hi!", nil)
}

// HandleCreateProduct registers a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req validation.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create request body: %v", err)
		return apperrors.NewValidationError("body", "request body is not valid JSON")
	}
	if err := h.validator.Create(&req); err != nil {
		return err
	}

	product, err := h.service.CreateProduct(&req)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "product created successfully", product)
}

// HandleGetProducts lists every product, newest first.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "product list retrieved successfully", products)
}

// HandleGetProductByID returns the product the guard attached. The guard
// already guarantees existence; the password is stripped by serialization.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, "product retrieved successfully", guardProduct(c))
}

// HandleUpdateProduct applies a partial update to an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req validation.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update request body: %v", err)
		return apperrors.NewValidationError("body", "request body is not valid JSON")
	}
	if err := h.validator.Update(&req); err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(guardProduct(c), &req)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "product updated successfully", product)
}

// HandleDeleteProduct deletes an existing product after password
// verification and answers with the deleted id.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	var req validation.DeleteProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing delete request body: %v", err)
		return apperrors.NewValidationError("body", "request body is not valid JSON")
	}
	if err := h.validator.Delete(&req); err != nil {
		return err
	}

	product := guardProduct(c)
	if err := h.service.DeleteProduct(product, req.Password); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "product deleted successfully", fiber.Map{"id": product.ID})
}

// guardProduct returns the product attached by the ProductGuard middleware.
func guardProduct(c *fiber.Ctx) *models.Product {
	return c.Locals(middleware.ProductContextKey).(*models.Product)
}
