package front

import (
	"github.com/gin-gonic/gin"
	"github.com/lumen-studio/recruit-intake/internal/http/api/front/handlers"
	"github.com/lumen-studio/recruit-intake/internal/service"
	"gorm.io/gorm"
)

// RegisterFrontRoutes registers the unauthenticated public API.
func RegisterFrontRoutes(r *gin.Engine, db *gorm.DB) {
	if r == nil || db == nil {
		return
	}

	front := r.Group("/api")

	recruitmentHandler := handlers.NewRecruitmentHandler(service.NewRecruitmentService(db))
	front.GET("/recruitments", recruitmentHandler.List)
	front.GET("/recruitments/:id", recruitmentHandler.Get)

	applicationHandler := handlers.NewApplicationHandler(service.NewApplicationService(db))
	front.POST("/applications", applicationHandler.Submit)
}
