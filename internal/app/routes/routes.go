package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/siswa/internal/app/controllers"
	"github.com/yigit/siswa/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	pageController *controllers.PageController,
	studentController *controllers.StudentController,
) {
	// --- HTML pages ---
	router.GET("/", pageController.Index)
	pages := router.Group("/students")
	{
		pages.POST("", pageController.CreateStudent)
		pages.GET("/:id/delete", pageController.ConfirmDelete)
		pages.POST("/:id/delete", pageController.DeleteStudent)
	}

	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/stats", studentController.GetStudentSummary)
		students.GET("/:id", studentController.GetStudentByID)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Success:   true,
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
