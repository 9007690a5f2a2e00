package sandboxRoutes

import (
	sandboxControllers "skillport/controllers/sandbox"
	"skillport/middleware"
	sandboxValidators "skillport/validators/sandbox"

	"github.com/gofiber/fiber/v2"
)

func SetupSandboxRoutes(app *fiber.App) {
	sandboxGroup := app.Group("/api/sandbox", middleware.JWTMiddleware)

	sandboxGroup.Post("/preview", sandboxValidators.Preview(), sandboxControllers.PreviewHTML)
	sandboxGroup.Post("/run/python", sandboxValidators.Run(), sandboxControllers.RunPython)
}
