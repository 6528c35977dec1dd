package handlers

import "github.com/gin-gonic/gin"

// Context keys populated by the admin auth gate.
const (
	ContextAdminID       = "adminID"
	ContextAdminUsername = "adminUsername"
)

// currentAdminID returns the verified admin id stored by the auth gate.
func currentAdminID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextAdminID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok && id != 0
}
