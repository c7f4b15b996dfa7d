package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/services"
)

// SharedTaskController registers the public share-link read. No auth:
// the task is intentionally viewable by anyone holding the link.
func SharedTaskController(router *gin.Engine, svc *services.TaskService) {
	router.GET("/tasks/shared/:taskId", func(c *gin.Context) {
		SharedTask(c, svc)
	})
}

func SharedTask(c *gin.Context, svc *services.TaskService) {
	taskId := c.Param("taskId")

	task, err := svc.GetShared(c.Request.Context(), taskId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task fetched successfully",
		"task":    task,
	})
}
