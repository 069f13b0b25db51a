package employee

import (
	"github.com/tech1210/empthics-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	emp := r.Group("/employees")
	emp.Use(middleware.AuthMiddleware())
	{
		emp.GET("", middleware.RoleMiddleware(middleware.RoleOrganization), handler.GetAll)
		emp.GET("/roster", middleware.RoleMiddleware(middleware.RoleOrganization), handler.GetRoster)
		emp.GET("/:id", handler.GetByID)
		emp.POST("", middleware.RoleMiddleware(middleware.RoleOrganization), handler.Create)
		emp.PUT("/:id", middleware.RoleMiddleware(middleware.RoleOrganization), handler.Update)
		emp.DELETE("/:id", middleware.RoleMiddleware(middleware.RoleOrganization), handler.Deactivate)
	}
}
