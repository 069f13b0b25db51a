package leave

import (
	"github.com/tech1210/empthics-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	lv := r.Group("/leaves")
	lv.Use(middleware.AuthMiddleware())
	{
		lv.POST("", middleware.RoleMiddleware(middleware.RoleEmployee), handler.Apply)
		lv.GET("/mine", middleware.RoleMiddleware(middleware.RoleEmployee), handler.MyLeaves)
		lv.GET("/balances", middleware.RoleMiddleware(middleware.RoleEmployee), handler.MyBalances)

		org := lv.Group("", middleware.RoleMiddleware(middleware.RoleOrganization))
		{
			org.GET("", handler.GetAll)
			org.POST("/direct", handler.CreateDirect)
			org.POST("/decide/:id", handler.Decide)
			org.POST("/balances/allocate", handler.AllocateBalance)
		}
	}

	lt := r.Group("/leave-types")
	lt.Use(middleware.AuthMiddleware())
	{
		lt.GET("", handler.ListTypes)
		lt.POST("", middleware.RoleMiddleware(middleware.RoleOrganization), handler.CreateType)
		lt.PUT("/:id", middleware.RoleMiddleware(middleware.RoleOrganization), handler.UpdateType)
	}
}
