package response

import "github.com/gin-gonic/gin"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RespondJSON writes the standard envelope
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

func RespondSuccess(c *gin.Context, code int, message string, data interface{}) {
	RespondJSON(c, StatusSuccess, code, message, data, nil)
}

// RespondError writes an error envelope; errs carries validation details when present
func RespondError(c *gin.Context, code int, message string, errs interface{}) {
	RespondJSON(c, StatusError, code, message, nil, errs)
}

// AbortWithError writes an error envelope and stops the handler chain
func AbortWithError(c *gin.Context, code int, message string) {
	RespondError(c, code, message, nil)
	c.Abort()
}
