package response

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oretina/assettrack/pkg/apperror"
	"github.com/oretina/assettrack/pkg/credential"
)

const identityKey = "identity"

// Success writes the standard envelope around a payload.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Error maps a service error to a status code and a user-safe body.
// Raw store errors are logged here and never reach the client.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("[internal error] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = apperror.ErrInternal.Error()
	}

	c.JSON(code, gin.H{"error": msg})
}

// SetIdentity stashes the verified caller identity for downstream handlers.
func SetIdentity(c *gin.Context, claims *credential.Claims) {
	c.Set(identityKey, claims)
}

// GetIdentity retrieves the caller identity set by the auth middleware.
func GetIdentity(c *gin.Context) (*credential.Claims, error) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, apperror.ErrUnauthorized
	}

	claims, ok := v.(*credential.Claims)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	return claims, nil
}
