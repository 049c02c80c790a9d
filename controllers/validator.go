package controllers

import (
	"github.com/athh15/vef2-hop1/models"
	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the expected shape of a registration body.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RequestValidator handles request-shape validation; rules needing a
// database lookup live in the services.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ValidateRegister maps struct-tag violations to field errors in field order.
func (rv *RequestValidator) ValidateRegister(req RegisterRequest) []models.FieldError {
	err := rv.validate.Struct(&req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	var errors []models.FieldError
	for _, verr := range verrs {
		switch verr.Field() {
		case "Email":
			errors = append(errors, models.FieldError{
				Field:   "email",
				Message: "Email must be a string of at least 5 characters",
			})
		case "Password":
			errors = append(errors, models.FieldError{
				Field:   "password",
				Message: "Password must be a string of at least 8 characters",
			})
		}
	}
	return errors
}
