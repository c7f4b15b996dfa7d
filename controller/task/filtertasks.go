package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/middleware"
	"taskboard/services"
)

func FilterTasksController(router *gin.Engine, svc *services.TaskService) {
	router.GET("/tasks/filter", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		FilterTasks(c, svc)
	})
}

func FilterTasks(c *gin.Context, svc *services.TaskService) {
	userId := c.MustGet("userId").(string)
	filter := c.DefaultQuery("filter", string(services.WindowThisWeek))

	tasks, err := svc.FilterByWindow(c.Request.Context(), userId, services.Window(filter))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Tasks fetched successfully"
	if len(tasks) == 0 {
		message = "No tasks found for the selected period"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"tasks":   tasks,
	})
}
