package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Common constants and helpers shared across all handler files.

// Per-request deadline for database work.
const requestTimeout = 10 * time.Second

// fail writes the uniform failure envelope with a single error message.
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// failValidation writes a 400 with an errors array, one entry per failed
// binding rule.
func failValidation(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"success": false, "errors": bindingErrors(err)})
}

func bindingErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []gin.H{{"msg": "Invalid request body"}}
	}

	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, gin.H{"field": fe.Field(), "msg": fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please enter a valid email"
	case "alpha":
		return fe.Field() + " must contain only letters"
	case "min":
		return fe.Field() + " is below the minimum length of " + fe.Param()
	case "max":
		return fe.Field() + " exceeds the maximum length of " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
