package config

import "time"

// Config holds all process-wide settings. It is built once at startup from
// the environment and passed into the managers that need it; nothing reads
// the environment after that.
type Config struct {
	AppName string

	// JWTSecret signs session tokens. TokenTTL is their validity window.
	JWTSecret string
	TokenTTL  time.Duration

	// OTPValidity is how long an issued verification code stays usable.
	OTPValidity time.Duration

	// SMTP settings for outgoing OTP mail.
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string

	// Google OAuth settings for the redirect-based flow.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	DatabaseURL string
}

// Load reads the environment into a Config. Defaults follow the production
// deployment: 30-day sessions, 10-minute OTP codes.
func Load() *Config {
	smtpUser := GetEnv("SMTP_USER")

	return &Config{
		AppName: GetEnvAsStr("APP_NAME", "Notes App"),

		JWTSecret: GetEnv("JWT_SECRET"),
		TokenTTL:  time.Duration(GetEnvAsInt("JWT_EXPIRATION_MINUTES", 43200, true)) * time.Minute,

		OTPValidity: time.Duration(GetEnvAsInt("OTP_EXPIRATION_MINUTES", 10, true)) * time.Minute,

		SMTPHost:     GetEnvAsStr("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587, true),
		SMTPUser:     smtpUser,
		SMTPPassword: GetEnv("SMTP_PASSWORD"),
		EmailFrom:    GetEnvAsStr("EMAIL_FROM", smtpUser),

		GoogleClientID:     GetEnv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: GetEnv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  GetEnv("GOOGLE_REDIRECT_URL"),

		DatabaseURL: GetEnvAsStr("DB_URL", "notes.db"),
	}
}
