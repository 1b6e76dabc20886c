// file: routes/router.go
package routes

import (
	"cyberrange/controllers"
	"cyberrange/middlewares"
	"cyberrange/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", controllers.Login)
		}

		// --- 超管排行榜与演练管控，仅管理员可用 ---
		superadminRoutes := apiV1.Group("/superadmin")
		superadminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			superadminRoutes.GET("/active-scenarios", controllers.ListActiveScenarios)
			superadminRoutes.GET("/active-scenarios/:id/overview", controllers.GetSessionOverview)
			superadminRoutes.GET("/active-scenarios/:id/leaderboard", controllers.GetSessionLeaderboard)
			superadminRoutes.POST("/active-scenarios/:id/score-adjustments", controllers.ApplyScoreAdjustment)
			superadminRoutes.PUT("/active-scenarios/:id/flags/:item_id/lock", controllers.ToggleFlagLock)
			superadminRoutes.PUT("/active-scenarios/:id/milestones/:item_id/lock", controllers.ToggleMilestoneLock)
			superadminRoutes.PUT("/active-scenarios/:id/phases/:item_id/lock", controllers.TogglePhaseLock)
		}
	}

	return r
}
