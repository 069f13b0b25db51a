package attendance

import (
	"github.com/tech1210/empthics-backend/internal/middleware"

	"github.com/gin-gonic/gin"

	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	att := r.Group("/attendance")
	att.Use(middleware.AuthMiddleware())
	{
		punch := att.Group("")
		punch.Use(middleware.RateLimitByIP(1, 5))
		if rdb != nil {
			punch.Use(middleware.Idempotency(rdb))
		}
		punch.POST("/punch", middleware.RoleMiddleware(middleware.RoleEmployee), handler.Punch)

		att.GET("/summary", middleware.RoleMiddleware(middleware.RoleEmployee), handler.Summary)
		att.GET("", middleware.RoleMiddleware(middleware.RoleOrganization), handler.GetAll)
	}
}
