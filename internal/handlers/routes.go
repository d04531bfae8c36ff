package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler mounted by RegisterRoutes
type Handlers struct {
	Dashboard   *DashboardHandler
	User        *UserHandler
	Transaction *TransactionHandler
	Form        *FormHandler
	Activity    *ActivityHandler
	Task        *TaskHandler
	Widget      *WidgetHandler
}

// RegisterRoutes mounts the health check and the /api routes on r
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Realty Dashboard API is running",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/dashboard/stats", h.Dashboard.GetStats)
		api.GET("/team/performance", h.Dashboard.GetTeamPerformance)

		users := api.Group("/users")
		{
			users.GET("", h.User.ListUsers)
			users.POST("", h.User.CreateUser)
			users.GET("/:id", h.User.GetUser)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", h.Transaction.ListTransactions)
			transactions.POST("", h.Transaction.CreateTransaction)
		}

		forms := api.Group("/forms")
		{
			forms.GET("", h.Form.ListForms)
			forms.POST("", h.Form.CreateForm)
			forms.PATCH("/:id/status", h.Form.UpdateFormStatus)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", h.Activity.ListActivities)
			activities.POST("", h.Activity.CreateActivity)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.Task.ListTasks)
			tasks.POST("", h.Task.CreateTask)
			tasks.POST("/suggest", h.Task.SuggestTasks)
			tasks.PATCH("/:id/status", h.Task.UpdateTaskStatus)
		}

		api.GET("/platforms", h.Widget.ListPlatforms)
		api.GET("/widget/context", h.Widget.GetContext)
	}
}
