package holiday

import (
	"github.com/tech1210/empthics-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	hol := r.Group("/holidays")
	hol.Use(middleware.AuthMiddleware())
	{
		hol.GET("", handler.List)
		hol.POST("/bulk", middleware.RoleMiddleware(middleware.RoleOrganization), handler.BulkUpload)
	}
}
