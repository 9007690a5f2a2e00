package supportController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillport/config"
	"skillport/database"
	"skillport/models"
	supportValidator "skillport/validators/support"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	})

	app.Post("/api/support/tickets", supportValidator.Ticket(), CreateTicket)
	app.Get("/api/support/tickets", GetMyTickets)
	app.Get("/admin/support/tickets", supportValidator.List(), AdminListTickets)
	app.Put("/admin/support/tickets/:id/respond", supportValidator.TicketResponse(), AdminRespondTicket)
	return app
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	user := models.User{Name: "Support User", Email: email, Password: "hash", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	var reader *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestCreateAndListTickets(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "tania@example.com")
	app := newTestApp(user.ID)

	resp, _ := doJSON(t, app, "POST", "/api/support/tickets", map[string]any{
		"subject": "Payment pending",
		"message": "My payment has been pending for two days now.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, "GET", "/api/support/tickets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tickets := body["data"].(map[string]any)["tickets"].([]any)
	require.Len(t, tickets, 1)
	assert.Equal(t, models.TicketStatusOpen, tickets[0].(map[string]any)["status"])
}

func TestCreateTicketValidation(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "tania@example.com")
	app := newTestApp(user.ID)

	resp, body := doJSON(t, app, "POST", "/api/support/tickets", map[string]any{
		"subject": "Hi",
		"message": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	errors := body["data"].(map[string]any)
	assert.Contains(t, errors, "subject")
	assert.Contains(t, errors, "message")
}

func TestAdminTicketQueue(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "tania@example.com")

	ticket := models.SupportTicket{UserID: user.ID, Subject: "Broken lesson", Message: "Lesson 2.3 does not load for me.", Status: models.TicketStatusOpen}
	require.NoError(t, db.Create(&ticket).Error)
	require.NoError(t, db.Create(&models.SupportTicket{
		UserID: user.ID, Subject: "Old issue", Message: "Already handled a while ago.", Status: models.TicketStatusClosed,
	}).Error)

	admin := seedUser(t, db, "admin@example.com")
	app := newTestApp(admin.ID)

	// Default queue shows OPEN only
	resp, body := doJSON(t, app, "GET", "/admin/support/tickets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["data"].(map[string]any)["total"])

	resp, body = doJSON(t, app, "GET", "/admin/support/tickets?status=ALL", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["data"].(map[string]any)["total"])

	// Answer without closing
	resp, _ = doJSON(t, app, "PUT", fmt.Sprintf("/admin/support/tickets/%d/respond", ticket.ID), map[string]any{
		"response": "We have pushed a fix, please reload.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.SupportTicket
	require.NoError(t, db.First(&updated, ticket.ID).Error)
	assert.Equal(t, models.TicketStatusAnswered, updated.Status)
	assert.Equal(t, "We have pushed a fix, please reload.", updated.Response)

	// Answer and close
	resp, _ = doJSON(t, app, "PUT", fmt.Sprintf("/admin/support/tickets/%d/respond", ticket.ID), map[string]any{
		"response": "Closing this out.",
		"close":    true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&updated, ticket.ID).Error)
	assert.Equal(t, models.TicketStatusClosed, updated.Status)
}
