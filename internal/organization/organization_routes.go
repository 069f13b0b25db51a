package organization

import (
	"github.com/tech1210/empthics-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	org := r.Group("/organization")
	org.Use(middleware.AuthMiddleware())
	{
		org.GET("/settings", handler.GetSettings)
		org.PUT("/settings", middleware.RoleMiddleware(middleware.RoleOrganization), handler.UpdateSettings)
		org.POST("/settings/toggle-regularization", middleware.RoleMiddleware(middleware.RoleOrganization), handler.ToggleRegularization)
	}
}
