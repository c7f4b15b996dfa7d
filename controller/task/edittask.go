package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/dto"
	"taskboard/middleware"
	"taskboard/model"
	"taskboard/services"
)

func EditTaskController(router *gin.Engine, svc *services.TaskService) {
	router.PUT("/tasks/:taskId", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		EditTask(c, svc)
	})
}

func EditTask(c *gin.Context, svc *services.TaskService) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("taskId")
	var req dto.EditTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dueDate, err := dto.ParseDueDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := svc.Edit(c.Request.Context(), userId, services.EditTaskInput{
		TaskID:     taskId,
		Title:      req.Title,
		Priority:   model.Priority(req.Priority),
		DueDate:    dueDate,
		AssigneeID: req.AssigneeID,
		Checklists: dto.Checklist(req.Checklists),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    updated,
	})
}
