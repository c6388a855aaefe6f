package validation

import (
	"fmt"
	"reflect"
	"strings"

	"catalog/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// passwordSymbols is the set of special characters the password rule accepts.
const passwordSymbols = "!@#$%^*+=-"

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=10"`
	Description string `json:"description" validate:"required,min=1,max=100"`
	Manager     string `json:"manager" validate:"required,min=2,max=10"`
	Password    string `json:"password" validate:"required,product_password"`
	Status      string `json:"status" validate:"omitempty,oneof=FOR_SALE SOLD_OUT"`
}

// UpdateProductRequest is the body of PATCH /products/:id. Every field is
// optional except the password, which authorizes the mutation. A field left
// empty keeps the stored value.
type UpdateProductRequest struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=10"`
	Description string `json:"description" validate:"omitempty,min=1,max=100"`
	Manager     string `json:"manager" validate:"omitempty,min=2,max=10"`
	Password    string `json:"password" validate:"required,product_password"`
	Status      string `json:"status" validate:"omitempty,oneof=FOR_SALE SOLD_OUT"`
}

// DeleteProductRequest is the body of DELETE /products/:id.
type DeleteProductRequest struct {
	Password string `json:"password" validate:"required,product_password"`
}

// ProductValidator checks untrusted request bodies against the product
// field rules. It surfaces only the first failing field, as a
// *apperrors.ValidationError with a message specific to that field and rule.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator creates a ProductValidator with the password
// composition rule registered and error messages keyed by JSON field names.
func NewProductValidator() *ProductValidator {
	v := validator.New()

	// Report wire names (json tags), not Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Must never fail: the rule name is a constant and the func is non-nil.
	if err := v.RegisterValidation("product_password", validPassword); err != nil {
		panic(err)
	}

	return &ProductValidator{validate: v}
}

// Create validates the body of a product creation request.
func (pv *ProductValidator) Create(req *CreateProductRequest) error {
	return pv.check(req)
}

// Update validates the body of a product update request.
func (pv *ProductValidator) Update(req *UpdateProductRequest) error {
	return pv.check(req)
}

// Delete validates the body of a product deletion request.
func (pv *ProductValidator) Delete(req *DeleteProductRequest) error {
	return pv.check(req)
}

// check runs the struct rules and converts the first failure into the
// pipeline's validation error.
func (pv *ProductValidator) check(req interface{}) error {
	err := pv.validate.Struct(req)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return err
	}
	first := fieldErrs[0]
	return apperrors.NewValidationError(first.Field(), messageFor(first))
}

// messageFor builds the human-readable message for a single rule failure.
func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field(), strings.Join(strings.Fields(e.Param()), ", "))
	case "product_password":
		return fmt.Sprintf("%s must be 8 to 15 characters and include a letter, a number and a special character (%s)", e.Field(), passwordSymbols)
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// validPassword implements the composition rule: 8 to 15 characters with at
// least one ASCII letter, one digit and one symbol from passwordSymbols.
// Characters outside those classes are allowed but count toward the length.
func validPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 || len(s) > 15 {
		return false
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, c := range s {
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		}
	}
	return hasLetter && hasDigit && hasSymbol
}
