package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, code int, message string, data interface{}) {
	RespondJSON(c, "success", code, message, data, nil)
}

// Error writes an error envelope with the given status code.
func Error(c *gin.Context, code int, message string, errors interface{}) {
	RespondJSON(c, "error", code, message, nil, errors)
}

// FieldErrors writes a 422 envelope carrying per-field validation messages.
// Field errors never advance a checkout step; they are re-shown inline.
func FieldErrors(c *gin.Context, fields map[string]string) {
	RespondJSON(c, "error", http.StatusUnprocessableEntity, "Validation failed", nil, fields)
}
