package report

import (
	"github.com/tech1210/empthics-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	rep := r.Group("/reports")
	rep.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(middleware.RoleOrganization))
	{
		rep.GET("/daily", handler.Daily)
		rep.GET("/custom", handler.Custom)
		rep.GET("/custom/export", handler.ExportCustom)
		rep.GET("/dashboard", handler.Dashboard)
	}
}
