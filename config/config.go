package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	SendgridApiKey string
	EmailSender    string
	SupportEmail   string

	// Piston is the external code-execution engine backing the
	// Python live-code runner.
	PistonApiUrl     string
	PistonTimeoutSec int

	// Manual payment review windows (hours).
	PaymentReminderHours int
	PaymentExpiryHours   int

	CatalogFile string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@skillport.io"),
		SupportEmail:   getEnv("SUPPORT_EMAIL", "support@skillport.io"),

		PistonApiUrl:     getEnv("PISTON_API_URL", "https://emkc.org/api/v2/piston"),
		PistonTimeoutSec: getEnvInt("PISTON_TIMEOUT_SEC", 15),

		PaymentReminderHours: getEnvInt("PAYMENT_REMINDER_HOURS", 24),
		PaymentExpiryHours:   getEnvInt("PAYMENT_EXPIRY_HOURS", 168),

		CatalogFile: getEnv("CATALOG_FILE", "catalog.json"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendgridApiKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Outgoing email is disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
