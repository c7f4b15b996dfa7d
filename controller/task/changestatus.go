package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/dto"
	"taskboard/middleware"
	"taskboard/model"
	"taskboard/services"
)

func ChangeStatusController(router *gin.Engine, svc *services.TaskService) {
	router.PATCH("/tasks/status", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ChangeStatus(c, svc)
	})
}

func ChangeStatus(c *gin.Context, svc *services.TaskService) {
	userId := c.MustGet("userId").(string)
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := svc.ChangeStatus(c.Request.Context(), userId, req.TaskID, model.Status(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task status updated successfully",
		"task":    updated,
	})
}
