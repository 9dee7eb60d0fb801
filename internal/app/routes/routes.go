package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/controllers"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
)

// Controllers bundles every controller the route table needs.
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Faculty    *controllers.FacultyController
	Course     *controllers.CourseController
	Class      *controllers.ClassController
	Report     *controllers.ReportController
	Feedback   *controllers.FeedbackController
	Rating     *controllers.RatingController
	Monitoring *controllers.MonitoringController
}

// SetupRoutes registers the full route table. Register, login and ping are
// public; everything else sits behind bearer-token authentication.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.GET("/me", authMW.JWTAuth(), ctrl.Auth.Me)
	}

	protected := api.Group("")
	protected.Use(authMW.JWTAuth())
	{
		users := protected.Group("/users")
		{
			users.GET("", ctrl.User.GetAllUsers)
			users.GET("/role/:role", ctrl.User.GetUsersByRole)
			users.GET("/faculty/:facultyId/lecturers", ctrl.User.GetFacultyLecturers)
			users.DELETE("/:id", ctrl.User.DeleteUser)
		}

		protected.GET("/faculties", ctrl.Faculty.GetAllFaculties)
		protected.POST("/faculties", ctrl.Faculty.CreateFaculty)
		protected.GET("/streams", ctrl.Faculty.GetAllStreams)

		courses := protected.Group("/courses")
		{
			courses.GET("", ctrl.Course.GetCourses)
			courses.GET("/prl/all", ctrl.Course.GetAllCoursesForPRL)
			courses.POST("", ctrl.Course.CreateCourse)
			courses.POST("/assign", ctrl.Course.AssignLecturer)
			courses.DELETE("/:id", ctrl.Course.DeleteCourse)
		}

		classes := protected.Group("/classes")
		{
			classes.GET("", ctrl.Class.GetAllClasses)
			classes.POST("", ctrl.Class.CreateClass)
			classes.GET("/lecturer/:id", ctrl.Class.GetLecturerClasses)
			classes.GET("/pl/:id", ctrl.Class.GetPLClasses)
			classes.POST("/enroll", ctrl.Class.EnrollStudent)
			classes.DELETE("/:id", ctrl.Class.DeleteClass)
		}

		reports := protected.Group("/reports")
		{
			reports.POST("", ctrl.Report.SubmitReport)
			reports.GET("/feedback/lecturer/:lecturerId", ctrl.Report.GetLecturerFeedback)
			reports.GET("/:role/:userId", ctrl.Report.GetReportsByRole)
			reports.DELETE("/:reportId", ctrl.Report.DeleteReport)
		}

		feedback := protected.Group("/feedback")
		{
			feedback.GET("", ctrl.Feedback.GetAllFeedback)
			feedback.GET("/role/:role", ctrl.Feedback.GetFeedbackByRole)
			feedback.POST("", ctrl.Feedback.AddFeedback)
			feedback.DELETE("/:id", ctrl.Feedback.DeleteFeedback)
		}

		ratings := protected.Group("/ratings")
		{
			ratings.POST("", ctrl.Rating.AddRating)
			ratings.GET("/:role/:userId", ctrl.Rating.GetRatingsByRole)
		}

		protected.GET("/monitoring/:role/:userId", ctrl.Monitoring.GetMonitoring)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
