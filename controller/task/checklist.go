package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/dto"
	"taskboard/middleware"
	"taskboard/services"
)

func ToggleChecklistController(router *gin.Engine, svc *services.TaskService) {
	router.PATCH("/tasks/checklist", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ToggleChecklist(c, svc)
	})
}

func ToggleChecklist(c *gin.Context, svc *services.TaskService) {
	userId := c.MustGet("userId").(string)
	var req dto.ToggleChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := svc.ToggleChecklistItem(c.Request.Context(), userId, req.TaskID, req.ChecklistIndex)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task checklist updated successfully",
		"task":    updated,
	})
}
