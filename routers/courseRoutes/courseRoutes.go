package courseRoutes

import (
	controllers "skillport/controllers/course"
	enrollmentControllers "skillport/controllers/enrollment"
	"skillport/middleware"
	validators "skillport/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course and viewer routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog
	courseGroup.Get("/", validators.List(), controllers.GetAllCourses)

	// Purchased courses must be registered before the :key wildcard
	courseGroup.Get("/purchased/:email", middleware.JWTMiddleware, enrollmentControllers.GetPurchasedCourses)

	courseGroup.Get("/:key", controllers.GetCourseDetails)
	courseGroup.Get("/:key/access", middleware.JWTMiddleware, enrollmentControllers.CheckCourseAccess)

	// Viewer
	courseGroup.Get("/:key/sidebar", middleware.JWTMiddleware, controllers.GetSidebar)
	courseGroup.Get("/:key/modules/:moduleKey/lessons/:index", middleware.JWTMiddleware, controllers.GetLessonView)
	courseGroup.Post("/:key/modules/:moduleKey/lessons/:index/complete", middleware.JWTMiddleware, controllers.CompleteLesson)
	courseGroup.Get("/:key/progress", middleware.JWTMiddleware, controllers.GetCourseProgress)

	// Reviews
	courseGroup.Post("/:key/reviews", middleware.JWTMiddleware, validators.Review(), controllers.SubmitReview)
	courseGroup.Get("/:key/reviews", controllers.GetCourseReviews)

	// Certificates
	courseGroup.Post("/:key/certificate/request", middleware.JWTMiddleware, controllers.RequestCertificate)

	userGroup := app.Group("/api/user")
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
	userGroup.Get("/enrollments", middleware.JWTMiddleware, enrollmentControllers.GetUserEnrollments)
}
