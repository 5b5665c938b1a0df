package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resourcely-be/internal/repository"
	"resourcely-be/internal/service"
)

// respondError maps a service/store failure onto the error taxonomy:
// not-found → 404, validation → 400, bad credentials → 401, anything
// else → 500 with a generic message. Every non-2xx body is {"message"}.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

// bindingErrorMessage turns a request binding failure into a client
// message without leaking internals beyond field names.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		switch fe.Tag() {
		case "required":
			return "Field '" + fe.Field() + "' is required"
		case "email":
			return "Field '" + fe.Field() + "' must be a valid email"
		case "min", "max", "oneof":
			return "Field '" + fe.Field() + "' is out of range"
		}
		return "Field '" + fe.Field() + "' is invalid"
	}
	return "Invalid request body"
}
