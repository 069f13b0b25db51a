package regularization

import (
	"github.com/tech1210/empthics-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reg := r.Group("/regularizations")
	reg.Use(middleware.AuthMiddleware())
	{
		reg.POST("", middleware.RoleMiddleware(middleware.RoleEmployee), handler.Create)
		reg.GET("/mine", middleware.RoleMiddleware(middleware.RoleEmployee), handler.MyRequests)

		reg.GET("", middleware.RoleMiddleware(middleware.RoleOrganization), handler.ListOrgRequests)
		reg.POST("/review/:id", middleware.RoleMiddleware(middleware.RoleOrganization), handler.Review)
	}
}
