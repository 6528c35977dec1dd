package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	apihttp "github.com/lumen-studio/recruit-intake/internal/http"
	"github.com/lumen-studio/recruit-intake/internal/models"
	"github.com/lumen-studio/recruit-intake/internal/service"
)

// ApplicationHandler manages submitted applications.
type ApplicationHandler struct {
	applications *service.ApplicationService
}

// NewApplicationHandler constructs an ApplicationHandler.
func NewApplicationHandler(applications *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// updateStatusRequest defines the request body for status changes.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// List returns applications newest first, filtered by recruitmentId and status.
func (h *ApplicationHandler) List(c *gin.Context) {
	var filter service.ApplicationFilter
	if raw := strings.TrimSpace(c.Query("recruitmentId")); raw != "" {
		id, errParse := strconv.ParseUint(raw, 10, 63)
		if errParse != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recruitmentId"})
			return
		}
		filter.RecruitmentID = id
	}
	filter.Status = models.ApplicationStatus(strings.TrimSpace(c.Query("status")))

	rows, errList := h.applications.List(c.Request.Context(), filter)
	if errList != nil {
		apihttp.WriteError(c, errList)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UpdateStatus toggles an application between pending and processed.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := apihttp.ParseID(c, "id")
	if !ok {
		return
	}
	var body updateStatusRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	app, errUpdate := h.applications.SetStatus(c.Request.Context(), id, models.ApplicationStatus(body.Status))
	if errUpdate != nil {
		apihttp.WriteError(c, errUpdate)
		return
	}
	c.JSON(http.StatusOK, app)
}
