package utils

import (
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	AppName  string
	// CodeExp is the OTP validity in minutes, quoted in the email body.
	CodeExp int
}

// EmailManager delivers OTP mail over SMTP. It implements OTPDispatcher.
type EmailManager struct {
	Config *SMTPConfig
}

func NewEmailManager(config *SMTPConfig) *EmailManager {
	return &EmailManager{
		Config: config,
	}
}

// send handles the actual SMTP handshake and delivery.
func (em *EmailManager) send(toEmail string, subject string, body string) error {
	smtpAddr := fmt.Sprintf("%s:%d", em.Config.Host, em.Config.Port)

	// Headers per RFC 822; note the \r\n line endings and the blank line
	// separating headers from body.
	headers := []string{
		fmt.Sprintf("From: %s", em.Config.From),
		fmt.Sprintf("To: %s", toEmail),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}

	message := strings.Join(headers, "\r\n")

	auth := smtp.PlainAuth("", em.Config.User, em.Config.Password, em.Config.Host)

	return smtp.SendMail(smtpAddr, auth, em.Config.From, []string{toEmail}, []byte(message))
}

// SendOTP sends the verification code for signup, resend, and unverified
// login alike.
func (em *EmailManager) SendOTP(toEmail string, code string) error {
	subject := fmt.Sprintf("Your OTP for %s", em.Config.AppName)

	body := fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; max-width: 500px; margin: 0 auto;">
  <h2 style="color: #4F46E5;">%s Verification</h2>
  <p>Your One Time Password (OTP) for verification is:</p>
  <h1 style="background: #f4f4f4; padding: 10px; text-align: center; letter-spacing: 5px;">%s</h1>
  <p>This OTP is valid for %d minutes. Please do not share it with anyone.</p>
  <hr style="border: none; border-top: 1px solid #eee;" />
  <p style="color: #888; font-size: 12px;">If you didn't request this, please ignore this email.</p>
</div>`,
		em.Config.AppName, code, em.Config.CodeExp)

	return em.send(toEmail, subject, body)
}
