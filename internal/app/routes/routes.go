package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/controllers"
	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	schoolController *controllers.SchoolController,
	sessionController *controllers.SessionController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Public read routes ---
	v1.GET("/departments", departmentController.ListDepartments)
	v1.GET("/departments/:id", departmentController.GetDepartment)
	v1.GET("/schools", schoolController.ListSchools)
	v1.GET("/schools/:id", schoolController.GetSchool)
	v1.GET("/sessions", sessionController.ListSessions)
	v1.GET("/sessions/:id", sessionController.GetSession)
	v1.GET("/courses", courseController.ListCourses)
	v1.GET("/courses/:id", courseController.GetCourse)

	// --- Authenticated mutation routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		departments := authenticated.Group("/departments")
		{
			departments.POST("", departmentController.CreateDepartment)
			departments.PUT("/:id", departmentController.UpdateDepartment)
			departments.DELETE("/:id", departmentController.DeleteDepartment)
		}

		schools := authenticated.Group("/schools")
		{
			schools.POST("", schoolController.CreateSchool)
			schools.PUT("/:id", schoolController.UpdateSchool)
			schools.DELETE("/:id", schoolController.DeleteSchool)
		}

		sessions := authenticated.Group("/sessions")
		{
			sessions.POST("", sessionController.CreateSession)
			sessions.PUT("/:id", sessionController.UpdateSession)
			sessions.DELETE("/:id", sessionController.DeleteSession)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewDataResponse(gin.H{"status": "ok"}))
	})
}
