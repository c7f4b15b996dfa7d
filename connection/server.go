package connection

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	taskcontroller "taskboard/controller/task"
	usercontroller "taskboard/controller/user"
	"taskboard/services"
	"taskboard/store"
)

func StartServer() {
	router := gin.Default()

	fb, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	recordStore := store.NewFirestoreStore(fb)
	taskService := services.NewTaskService(recordStore)
	userService := services.NewUserService(recordStore)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	taskcontroller.CreateTaskController(router, taskService)
	taskcontroller.ChangeStatusController(router, taskService)
	taskcontroller.EditTaskController(router, taskService)
	taskcontroller.DeleteTaskController(router, taskService)
	taskcontroller.ToggleChecklistController(router, taskService)
	taskcontroller.FilterTasksController(router, taskService)
	taskcontroller.SharedTaskController(router, taskService)
	usercontroller.AnalyticsController(router, userService)

	router.Run()
}
