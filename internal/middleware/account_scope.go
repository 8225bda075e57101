package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// AccountIDHeader carries the caller's authenticated account, resolved
	// by the identity layer in front of this service.
	AccountIDHeader = "X-Account-ID"
	// AccountIDKey is the context key for the acting account id
	AccountIDKey = "account_id"
)

// AccountScope rejects requests whose authenticated account does not match
// the account addressed in the path. It stands in for the platform's
// authorization layer: the rejection happens before any handler runs.
func AccountScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		actingAccount := c.GetHeader(AccountIDHeader)
		if actingAccount == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not resolved"})
			return
		}

		if routeAccount := c.Param("account_id"); routeAccount != "" && routeAccount != actingAccount {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account mismatch"})
			return
		}

		c.Set(AccountIDKey, actingAccount)
		c.Next()
	}
}

// GetAccountID retrieves the acting account id from the gin context.
func GetAccountID(c *gin.Context) string {
	if accountID, exists := c.Get(AccountIDKey); exists {
		if id, ok := accountID.(string); ok {
			return id
		}
	}
	return ""
}
