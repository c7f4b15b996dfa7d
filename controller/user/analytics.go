package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/middleware"
	"taskboard/services"
)

func AnalyticsController(router *gin.Engine, svc *services.UserService) {
	router.GET("/user/analytics", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Analytics(c, svc)
	})
}

func Analytics(c *gin.Context, svc *services.UserService) {
	userId := c.MustGet("userId").(string)

	summary, err := svc.Analytics(c.Request.Context(), userId)
	if err != nil {
		if services.KindOf(err) == services.KindNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Analytics fetched successfully",
		"analytics": summary,
	})
}
