package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"professionals-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns validator errors into a field -> message map.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "url":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid URL", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of [%s]", fieldName, fieldError.Param())
		case "eqfield":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' does not match", fieldName)
		}
	}
	return errorsMap
}

// statusFor maps service errors to HTTP statuses; 0 means unexpected.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrUnsupportedProvider):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrBanned):
		return http.StatusForbidden
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrTooManyRequests):
		return http.StatusTooManyRequests
	}
	return 0
}

// respondError writes err as JSON. Unexpected errors are logged and reported
// as "Failed to <action>".
func respondError(c *gin.Context, err error, action string) {
	var fe *services.FieldError
	if errors.As(err, &fe) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation failed",
			"details": map[string]string{fe.Field: fe.Message},
		})
		return
	}
	if status := statusFor(err); status != 0 {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	log.Printf("Error trying to %s: %v", action, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

// abortError is respondError for middleware.
func abortError(c *gin.Context, err error, action string) {
	respondError(c, err, action)
	c.Abort()
}
