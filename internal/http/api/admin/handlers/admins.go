package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apihttp "github.com/lumen-studio/recruit-intake/internal/http"
	"github.com/lumen-studio/recruit-intake/internal/service"
)

// AdminHandler manages admin account endpoints.
type AdminHandler struct {
	admins *service.AdminService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(admins *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// createAdminRequest defines the request body for admin creation.
type createAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// changePasswordRequest defines the request body for password changes.
type changePasswordRequest struct {
	Password string `json:"password"`
}

// List returns all admin accounts, oldest first.
func (h *AdminHandler) List(c *gin.Context) {
	rows, errList := h.admins.List(c.Request.Context())
	if errList != nil {
		apihttp.WriteError(c, errList)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create creates a new admin account.
func (h *AdminHandler) Create(c *gin.Context) {
	var body createAdminRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	admin, errCreate := h.admins.Create(c.Request.Context(), body.Username, body.Password)
	if errCreate != nil {
		apihttp.WriteError(c, errCreate)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// ChangePassword replaces the password of an admin account.
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	id, ok := apihttp.ParseID(c, "id")
	if !ok {
		return
	}
	var body changePasswordRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	admin, errChange := h.admins.ChangePassword(c.Request.Context(), id, body.Password)
	if errChange != nil {
		apihttp.WriteError(c, errChange)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// Delete removes an admin account on behalf of the signed-in admin.
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := apihttp.ParseID(c, "id")
	if !ok {
		return
	}
	callerID, okCaller := currentAdminID(c)
	if !okCaller {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if errDelete := h.admins.Delete(c.Request.Context(), callerID, id); errDelete != nil {
		apihttp.WriteError(c, errDelete)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
