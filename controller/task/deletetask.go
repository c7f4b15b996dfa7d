package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/middleware"
	"taskboard/services"
)

func DeleteTaskController(router *gin.Engine, svc *services.TaskService) {
	router.DELETE("/tasks/:taskId", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTask(c, svc)
	})
}

func DeleteTask(c *gin.Context, svc *services.TaskService) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("taskId")

	if err := svc.Delete(c.Request.Context(), userId, taskId); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
