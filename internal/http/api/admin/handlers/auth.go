package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apihttp "github.com/lumen-studio/recruit-intake/internal/http"
	"github.com/lumen-studio/recruit-intake/internal/models"
	"github.com/lumen-studio/recruit-intake/internal/security"
	"github.com/lumen-studio/recruit-intake/internal/service"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	admins *service.AdminService
	tokens *security.TokenService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(admins *service.AdminService, tokens *security.TokenService) *AuthHandler {
	return &AuthHandler{admins: admins, tokens: tokens}
}

// loginRequest defines the request body for admin login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// adminUser is the public shape of an admin in auth responses.
type adminUser struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// Login authenticates an admin and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	username := strings.TrimSpace(body.Username)
	if username == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	admin, errAuth := h.admins.Authenticate(c.Request.Context(), username, body.Password)
	if errAuth != nil {
		if errors.Is(errAuth, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		apihttp.WriteError(c, errAuth)
		return
	}

	h.respondWithAdminToken(c, admin)
}

// Me echoes the identity carried by a valid token.
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := currentAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, adminUser{ID: id, Username: c.GetString(ContextAdminUsername)})
}

func (h *AuthHandler) respondWithAdminToken(c *gin.Context, admin *models.Admin) {
	token, errIssue := h.tokens.Issue(security.Identity{AdminID: admin.ID, Username: admin.Username})
	if errIssue != nil {
		apihttp.WriteError(c, errIssue)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  adminUser{ID: admin.ID, Username: admin.Username},
	})
}
