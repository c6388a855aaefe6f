package middleware

import (
	"catalog/internal/apperrors"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductContextKey is the locals key under which the guard stores the
// looked-up product, password included, for the downstream handler.
const ProductContextKey = "product"

// ProductGuard is the pre-check for every id-addressed product route.
// It rejects identifiers that do not match the store's id format without
// touching the store, resolves existence next, and attaches the record to
// the request context so handlers do not re-fetch it. Existence is always
// resolved before any password comparison happens downstream.
func ProductGuard(service *services.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// The store generates canonical 36-character UUID strings; anything
		// else is rejected before the lookup.
		if len(id) != 36 {
			return apperrors.ErrInvalidProductID
		}
		if _, err := uuid.Parse(id); err != nil {
			return apperrors.ErrInvalidProductID
		}

		product, err := service.GetProductByID(id)
		if err != nil {
			return err
		}

		c.Locals(ProductContextKey, product)
		return c.Next()
	}
}
