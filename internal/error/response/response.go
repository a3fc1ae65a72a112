package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearttune-http-service/internal/error/code"
)

// Success writes a 200 response with the given payload as-is. The
// mobile client expects per-endpoint shapes rather than a common
// envelope, so payloads are passed through untouched.
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error writes the status mapped from errorCode with an {"error": ...}
// body, as the playlist and register endpoints report failures.
func Error(c *gin.Context, errorCode int, message string) {
	if message == "" {
		message = code.GetMessage(errorCode)
	}
	c.JSON(code.GetStatus(errorCode), gin.H{"error": message})
}

// FailMessage writes the status mapped from errorCode with a
// {"message": ...} body, as the auth and settings endpoints report
// failures.
func FailMessage(c *gin.Context, errorCode int, message string) {
	if message == "" {
		message = code.GetMessage(errorCode)
	}
	c.JSON(code.GetStatus(errorCode), gin.H{"message": message})
}

// FailStatus writes the status mapped from errorCode with a
// {"success": false, "message": ...} body for the settings endpoints
// that carry an explicit success flag.
func FailStatus(c *gin.Context, errorCode int, message string) {
	if message == "" {
		message = code.GetMessage(errorCode)
	}
	c.JSON(code.GetStatus(errorCode), gin.H{"success": false, "message": message})
}

// Unauthorized writes a 401 response for missing or invalid tokens.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrTokenInvalid)
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": message})
}

// ServerError writes a 500 response surfacing the underlying message.
func ServerError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrUnknown)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}
