package http

import (
	"github.com/gin-gonic/gin"

	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/handlers"
	"github.com/QuocDam279/HeThongQuanLyDuAnVaCongViecNhom/internal/adapter/http/middleware"
)

// RegisterTaskRoutes wires the task service surface. The /internal listing
// and the batch lookup stay outside the auth group: sibling services call
// them without a user token.
func RegisterTaskRoutes(r *gin.Engine, jwtSecret string, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		tasks := api.Group("/tasks")
		{
			tasks.GET("/internal/all", taskHandler.ListAllTasks)
			tasks.GET("/batch", taskHandler.BatchTasks)

			authed := tasks.Group("")
			authed.Use(middleware.AuthMiddleware(jwtSecret))
			{
				authed.POST("", taskHandler.CreateTask)
				authed.GET("/my", taskHandler.ListMyTasks)
				authed.GET("/project/:projectId", taskHandler.ListProjectTasks)
				authed.GET("/stats/:projectId", taskHandler.ProjectTaskStats)
				authed.GET("/:id", taskHandler.GetTask)
				authed.PUT("/:id", taskHandler.UpdateTask)
				authed.DELETE("/:id", taskHandler.DeleteTask)
			}
		}
	}
}

func RegisterNotificationRoutes(r *gin.Engine, jwtSecret string, healthHandler *handlers.HealthHandler, notificationHandler *handlers.NotificationHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		notifications := api.Group("/notifications")
		notifications.Use(middleware.AuthMiddleware(jwtSecret))
		{
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.POST("/send", notificationHandler.SendNotification)
			notifications.GET("/my", notificationHandler.ListMyNotifications)
			notifications.GET("/:id", notificationHandler.GetNotification)
			notifications.PUT("/:id/read", notificationHandler.MarkNotificationRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}
	}
}

// RegisterActivityRoutes wires the activity sidecar. Recording is
// unauthenticated so sibling services can log without a user token; reads
// require one because they resolve display names through the callers'
// token.
func RegisterActivityRoutes(r *gin.Engine, jwtSecret string, healthHandler *handlers.HealthHandler, activityHandler *handlers.ActivityHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		activities := api.Group("/activities")
		{
			activities.POST("", activityHandler.RecordActivity)

			authed := activities.Group("")
			authed.Use(middleware.AuthMiddleware(jwtSecret))
			{
				authed.GET("/user/:userId", activityHandler.ListUserActivities)
				authed.GET("/related/:relatedType/:relatedId", activityHandler.ListRelatedActivities)
				authed.DELETE("/:id", activityHandler.DeleteActivity)
			}
		}
	}
}
