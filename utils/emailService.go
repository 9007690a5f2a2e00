package utils

import (
	"fmt"
	"log"

	"skillport/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a transactional email through Sendgrid. A missing API
// key disables outgoing mail instead of failing the caller's flow.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("Email disabled, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Skillport", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Sendgrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// HTML wrapper shared by all outgoing email
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #43A047; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SKILLPORT</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Skillport. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to Skillport! Your account is ready. Browse the catalog and start learning.</p>
	`, name)
	go SendEmail(email, name, "Welcome to Skillport", getEmailTemplate("Welcome aboard", body))
}

// 2. Payment received (pending admin review)
func SendPaymentReceivedEmail(email, name, courseName, transactionID string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received your payment details for <b>%s</b>.</p>
		<div class="info-box">Transaction ID: %s</div>
		<p>An admin will verify the transaction and confirm your enrollment. This can take up to 24 hours.</p>
	`, name, courseName, transactionID)
	go SendEmail(email, name, "Payment received, pending confirmation", getEmailTemplate("Payment received", body))
}

// 3. Enrollment confirmed
func SendEnrollmentConfirmedEmail(email, name, courseName, courseRoute string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment was verified and your enrollment in <b>%s</b> is confirmed. Happy learning!</p>
		<p>Start here: <a href="%s">%s</a></p>
	`, name, courseName, courseRoute, courseRoute)
	go SendEmail(email, name, "Enrollment confirmed", getEmailTemplate("You're in!", body))
}

// 4. Payment rejected
func SendPaymentRejectedEmail(email, name, courseName, reason string) {
	if reason == "" {
		reason = "The transaction could not be verified."
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We could not confirm your payment for <b>%s</b>.</p>
		<div class="info-box">%s</div>
		<p>Please contact %s if you believe this is a mistake.</p>
	`, name, courseName, reason, config.AppConfig.SupportEmail)
	go SendEmail(email, name, "Payment could not be confirmed", getEmailTemplate("Payment rejected", body))
}

// 5. Pending payment reminder for admins
func SendPendingPaymentReminderEmail(adminEmail string, pendingCount int, oldestHours float64) {
	body := fmt.Sprintf(`
		<p>There are <b>%d</b> manual payments waiting for review.</p>
		<div class="info-box">The oldest has been pending for %.0f hours.</div>
		<p>Students are told confirmation takes at most 24 hours.</p>
	`, pendingCount, oldestHours)
	go SendEmail(adminEmail, "Admin", "Pending payments need review", getEmailTemplate("Payments awaiting review", body))
}

// 6. Certificate issued
func SendCertificateIssuedEmail(email, name, courseName, serial string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your certificate for <b>%s</b> has been issued.</p>
		<div class="info-box">Serial: %s</div>
	`, name, courseName, serial)
	go SendEmail(email, name, "Your certificate is ready", getEmailTemplate("Certificate issued", body))
}

// 7. Password reset OTP
func SendPasswordResetEmail(email, name, code string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Use this code to reset your password. It expires in 10 minutes.</p>
		<div class="info-box"><b>%s</b></div>
	`, name, code)
	go SendEmail(email, name, "Password reset code", getEmailTemplate("Reset your password", body))
}
