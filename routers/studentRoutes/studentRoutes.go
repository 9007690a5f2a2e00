package studentRoutes

import (
	assignmentControllers "skillport/controllers/assignment"
	studentControllers "skillport/controllers/student"
	"skillport/middleware"
	studentValidators "skillport/validators/student"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/api/students", middleware.JWTMiddleware)

	studentGroup.Get("/:id", studentControllers.GetStudent)
	studentGroup.Put("/:id", studentValidators.StudentUpdate(), studentControllers.UpdateStudent)
	studentGroup.Put("/:id/password", studentValidators.ChangePassword(), studentControllers.ChangePassword)
	studentGroup.Post("/:id/submit-module", studentValidators.ModuleSubmission(), studentControllers.SubmitModule)
	studentGroup.Get("/:studentId/module-submissions/:courseKey", studentControllers.GetModuleSubmissions)

	// Assignments, projects and the portal progress summary
	app.Get("/api/assignments/:courseKey", middleware.JWTMiddleware, assignmentControllers.GetCourseAssignments)
	app.Get("/api/projects/:courseKey", middleware.JWTMiddleware, assignmentControllers.GetCourseProjects)
	app.Post("/api/assignments/:id/complete", middleware.JWTMiddleware, assignmentControllers.CompleteAssignment)
	app.Get("/api/progress/student/:id/course/:courseKey/summary", middleware.JWTMiddleware, assignmentControllers.GetProgressSummary)
}
