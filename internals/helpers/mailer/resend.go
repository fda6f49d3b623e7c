package mailer

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"github.com/resend/resend-go/v2"

	"exodus_backend/internals/configs"
)

// Mailer hides the transactional email provider from the auth controller.
type Mailer interface {
	SendPasswordResetEmail(email, otp string) error
}

type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer() *ResendMailer {
	return &ResendMailer{client: resend.NewClient(configs.ResendAPIKey)}
}

// GenerateOTP returns a random 6-digit code.
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the process is in serious trouble anyway
		log.Printf("[ERROR] otp generation: %v", err)
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

func (m *ResendMailer) SendPasswordResetEmail(email, otp string) error {
	resetLink := fmt.Sprintf("%s/reset-password?otp=%s", configs.FrontendURL, otp)

	html := fmt.Sprintf(`
	<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;color:#333">
	  <div style="background:#000;color:#fff;padding:20px;text-align:center">
	    <h1>Password Reset Request</h1>
	  </div>
	  <div style="background:#f9fafb;padding:30px">
	    <p>Hello,</p>
	    <p>We received a request to reset your password. Use the code below:</p>
	    <div style="font-size:32px;font-weight:bold;letter-spacing:5px;text-align:center;padding:20px;background:#fff">%s</div>
	    <p>Or click the link: <a href="%s">Reset Password</a></p>
	    <p><strong>This code will expire in 30 minutes.</strong></p>
	    <p>If you didn't request a password reset, please ignore this email.</p>
	  </div>
	</div>`, otp, resetLink)

	text := fmt.Sprintf(
		"Password Reset Request\n\nUse the code below to reset your password:\n\n%s\n\nOr visit: %s\n\nThis code will expire in 30 minutes.",
		otp, resetLink,
	)

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    configs.FromEmail,
		To:      []string{email},
		Subject: "Password Reset Request",
		Html:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}
