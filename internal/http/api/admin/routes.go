package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/lumen-studio/recruit-intake/internal/http/api/admin/handlers"
	"github.com/lumen-studio/recruit-intake/internal/security"
	"github.com/lumen-studio/recruit-intake/internal/service"
	"gorm.io/gorm"
)

// RegisterAdminRoutes registers login, health and the token-protected admin API.
func RegisterAdminRoutes(r *gin.Engine, db *gorm.DB, tokens *security.TokenService) {
	if r == nil || db == nil || tokens == nil {
		return
	}

	adminService := service.NewAdminService(db)

	healthHandler := handlers.NewHealthHandler(db)
	r.GET("/healthz", healthHandler.Healthz)

	authHandler := handlers.NewAuthHandler(adminService, tokens)
	r.POST("/api/auth/login", authHandler.Login)

	authed := r.Group("/api/admin")
	authed.Use(adminAuthMiddleware(tokens))

	authed.GET("/me", authHandler.Me)

	recruitmentHandler := handlers.NewRecruitmentHandler(service.NewRecruitmentService(db))
	authed.GET("/recruitments", recruitmentHandler.List)
	authed.POST("/recruitments", recruitmentHandler.Create)
	authed.GET("/recruitments/:id", recruitmentHandler.Get)
	authed.PUT("/recruitments/:id", recruitmentHandler.Update)
	authed.PATCH("/recruitments/:id", recruitmentHandler.Update)
	authed.DELETE("/recruitments/:id", recruitmentHandler.Delete)

	applicationHandler := handlers.NewApplicationHandler(service.NewApplicationService(db))
	authed.GET("/applications", applicationHandler.List)
	authed.PATCH("/applications/:id", applicationHandler.UpdateStatus)

	adminHandler := handlers.NewAdminHandler(adminService)
	authed.GET("/admins", adminHandler.List)
	authed.POST("/admins", adminHandler.Create)
	authed.PUT("/admins/:id", adminHandler.ChangePassword)
	authed.DELETE("/admins/:id", adminHandler.Delete)
}
