package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/backend/internal/app/controllers"
	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	requestController *controllers.RequestController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/send-otp", authController.SendOTP)
		auth.POST("/verify-otp", authController.VerifyOTP)
		auth.POST("/signup", authController.Signup)
		auth.POST("/signin", authController.Signin)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/profile/:id", studentController.GetProfileByID)

			// Own-profile management requires the student role
			studentOnly := students.Group("")
			studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				studentOnly.POST("/profile", studentController.CreateProfile)
				studentOnly.GET("/profile", studentController.GetOwnProfile)
				studentOnly.PATCH("/profile", studentController.UpdateProfile)
				studentOnly.DELETE("/profile", studentController.DeleteProfile)
			}
		}

		faculty := authenticated.Group("/faculty")
		{
			faculty.GET("/mentors", facultyController.ListMentors)
			faculty.GET("/profile/:id", facultyController.GetProfileByID)

			teacherOnly := faculty.Group("")
			teacherOnly.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				teacherOnly.POST("/profile", facultyController.CreateProfile)
				teacherOnly.GET("/profile", facultyController.GetOwnProfile)
				teacherOnly.PATCH("/profile", facultyController.UpdateProfile)
			}
		}

		requests := authenticated.Group("/requests")
		{
			requests.GET("/:id", requestController.GetByID)

			requestsStudent := requests.Group("")
			requestsStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				requestsStudent.POST("", requestController.Submit)
				requestsStudent.GET("/student", requestController.ListForStudent)
			}

			requestsTeacher := requests.Group("")
			requestsTeacher.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				requestsTeacher.GET("/mentor", requestController.ListForMentor)
				requestsTeacher.PATCH("/:id", requestController.Respond)
			}
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.GET("/unread-count", notificationController.UnreadCount)
			notifications.PATCH("/:id/read", notificationController.MarkRead)
			notifications.PATCH("/read-all", notificationController.MarkAllRead)
			notifications.DELETE("/:id", notificationController.Delete)
			notifications.DELETE("/read", notificationController.ClearRead)
		}
	}
}
