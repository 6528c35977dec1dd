package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lumen-studio/recruit-intake/internal/service"
	log "github.com/sirupsen/logrus"
)

// WriteError maps a service error onto the JSON error response.
// Unclassified errors become a generic 500 and are logged with the request id.
func WriteError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		writeInternal(c, err)
		return
	}
	switch svcErr.Code {
	case service.CodeValidation, service.CodeGuard, service.CodeConflict:
		c.JSON(http.StatusBadRequest, gin.H{"error": svcErr.Message})
	case service.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": svcErr.Message})
	default:
		writeInternal(c, err)
	}
}

func writeInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	log.WithError(err).WithField("request_id", RequestID(c)).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (uint64, bool) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 63)
	if errParse != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
