package supportRoutes

import (
	supportControllers "skillport/controllers/support"
	"skillport/middleware"
	supportValidators "skillport/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	supportGroup := app.Group("/api/support", middleware.JWTMiddleware)

	supportGroup.Post("/tickets", supportValidators.Ticket(), supportControllers.CreateTicket)
	supportGroup.Get("/tickets", supportControllers.GetMyTickets)

	adminGroup := app.Group("/admin/support", middleware.JWTMiddleware, middleware.AdminOnly())
	adminGroup.Get("/tickets", supportValidators.List(), supportControllers.AdminListTickets)
	adminGroup.Put("/tickets/:id/respond", supportValidators.TicketResponse(), supportControllers.AdminRespondTicket)
}
