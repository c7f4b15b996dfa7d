package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/dto"
	"taskboard/middleware"
	"taskboard/model"
	"taskboard/services"
)

func CreateTaskController(router *gin.Engine, svc *services.TaskService) {
	router.POST("/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateTask(c, svc)
	})
}

func CreateTask(c *gin.Context, svc *services.TaskService) {
	userId := c.MustGet("userId").(string)
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dueDate, err := dto.ParseDueDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := svc.Create(c.Request.Context(), userId, services.CreateTaskInput{
		Title:      req.Title,
		Priority:   model.Priority(req.Priority),
		Status:     model.Status(req.Status),
		DueDate:    dueDate,
		AssigneeID: req.AssigneeID,
		Checklists: dto.Checklist(req.Checklists),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    created,
	})
}
