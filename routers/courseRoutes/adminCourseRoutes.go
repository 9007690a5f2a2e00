package courseRoutes

import (
	assignmentControllers "skillport/controllers/assignment"
	controllers "skillport/controllers/course"
	"skillport/middleware"
	assignmentValidators "skillport/validators/assignment"
	validators "skillport/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin catalog management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/courses", middleware.JWTMiddleware, middleware.AdminOnly())

	// Course CRUD
	adminGroup.Post("/", validators.Course(), controllers.AdminCreateCourse)
	adminGroup.Put("/:key", validators.CourseUpdate(), controllers.AdminUpdateCourse)
	adminGroup.Post("/:key/aliases", controllers.AdminAddCourseAlias)
	adminGroup.Post("/:key/thumbnail", controllers.AdminUploadThumbnail)

	// Module management; reorder must precede the :moduleKey wildcard
	adminGroup.Post("/:key/modules", validators.Module(), controllers.AdminCreateModule)
	adminGroup.Put("/:key/modules/reorder", controllers.AdminReorderModules)
	adminGroup.Put("/:key/modules/:moduleKey", validators.ModuleUpdate(), controllers.AdminUpdateModule)

	// Lesson management
	adminGroup.Post("/:key/modules/:moduleKey/lessons", validators.Lesson(), controllers.AdminCreateLesson)
	adminGroup.Put("/:key/modules/:moduleKey/lessons/:index", validators.LessonUpdate(), controllers.AdminUpdateLesson)
	adminGroup.Delete("/:key/modules/:moduleKey/lessons/:index", controllers.AdminDeleteLesson)

	// Assignments and projects
	assignmentGroup := app.Group("/admin/assignments", middleware.JWTMiddleware, middleware.AdminOnly())
	assignmentGroup.Post("/", assignmentValidators.Assignment(), assignmentControllers.AdminCreateAssignment)

	projectGroup := app.Group("/admin/projects", middleware.JWTMiddleware, middleware.AdminOnly())
	projectGroup.Post("/", assignmentValidators.Project(), assignmentControllers.AdminCreateProject)

	submissionGroup := app.Group("/admin/submissions", middleware.JWTMiddleware, middleware.AdminOnly())
	submissionGroup.Put("/:id/review", assignmentValidators.SubmissionReview(), assignmentControllers.AdminReviewSubmission)

	// Certificates
	certGroup := app.Group("/admin/certificates", middleware.JWTMiddleware, middleware.AdminOnly())
	certGroup.Post("/:id/approve", controllers.AdminApproveCertificate)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly())
	dashGroup.Get("/stats", controllers.AdminDashboard)
}
