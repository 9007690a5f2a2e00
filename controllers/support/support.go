package supportController

import (
	"log"

	"skillport/database"
	"skillport/middleware"
	"skillport/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket opens a support ticket for the signed-in student.
func CreateTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedTicket").(*struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.SupportTicket{
		UserID:  userID,
		Subject: reqData.Subject,
		Message: reqData.Message,
		Status:  models.TicketStatusOpen,
	}
	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		log.Printf("Error creating support ticket: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Ticket created! Our team will get back to you.", fiber.Map{
		"ticket": ticket,
	})
}

// GetMyTickets lists the signed-in student's tickets, newest first.
func GetMyTickets(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var tickets []models.SupportTicket
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
	})
}

// AdminListTickets lists tickets by status for the support queue.
func AdminListTickets(c *fiber.Ctx) error {
	validated, ok := c.Locals("validatedList").(*struct {
		Page  int
		Limit int
	})
	page, limit := 1, 20
	if ok {
		page, limit = validated.Page, validated.Limit
	}

	status := c.Query("status", models.TicketStatusOpen)

	db := database.Database.Db
	query := db.Model(&models.SupportTicket{}).Where("is_deleted = ?", false)
	if status != "ALL" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var tickets []models.SupportTicket
	if err := query.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// AdminRespondTicket stores the support answer and marks the ticket
// answered.
func AdminRespondTicket(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	reqData, ok := c.Locals("validatedTicketResponse").(*struct {
		Response string `json:"response"`
		Close    bool   `json:"close"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var ticket models.SupportTicket
	if err := db.Where("id = ? AND is_deleted = ?", ticketID, false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	status := models.TicketStatusAnswered
	if reqData.Close {
		status = models.TicketStatusClosed
	}

	if err := db.Model(&ticket).Updates(map[string]interface{}{
		"response": reqData.Response,
		"status":   status,
	}).Error; err != nil {
		log.Printf("Error responding to ticket: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to respond to ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Response saved.", fiber.Map{
		"ticket": ticket,
	})
}
