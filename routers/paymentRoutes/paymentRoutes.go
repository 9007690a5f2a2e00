package paymentRoutes

import (
	paymentControllers "skillport/controllers/payment"
	"skillport/middleware"
	paymentValidators "skillport/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payments")

	paymentGroup.Post("/", middleware.JWTMiddleware, paymentValidators.Payment(), paymentControllers.CreatePayment)
	paymentGroup.Get("/", middleware.JWTMiddleware, paymentControllers.GetMyPayments)

	// The payment modal checks referral codes against the course here
	app.Post("/api/courses/verify-referral", paymentValidators.Referral(), paymentControllers.VerifyReferral)

	adminGroup := app.Group("/admin/payments", middleware.JWTMiddleware, middleware.AdminOnly())
	adminGroup.Get("/", paymentValidators.List(), paymentControllers.AdminListPayments)
	adminGroup.Put("/:id/confirm", paymentControllers.AdminConfirmPayment)
	adminGroup.Put("/:id/reject", paymentValidators.Rejection(), paymentControllers.AdminRejectPayment)

	referralGroup := app.Group("/admin/referral-codes", middleware.JWTMiddleware, middleware.AdminOnly())
	referralGroup.Post("/", paymentValidators.ReferralCreate(), paymentControllers.AdminCreateReferralCode)
}
