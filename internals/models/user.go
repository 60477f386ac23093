package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an identity record. A user always has a password hash, a Google
// subject id, or both. OTPCode and OTPExpiresAt are set together while a
// verification is pending and cleared together once it succeeds.
type User struct {
	gorm.Model
	Name     string `gorm:"column:name"`
	Email    string `gorm:"column:email;uniqueIndex"`
	Password string `gorm:"column:password"` // bcrypt hash; empty for Google-only accounts

	// OAuth2 / Social Login
	GoogleID string `gorm:"column:google_id;index"`

	IsVerified   bool       `gorm:"column:is_verified;default:false"`
	OTPCode      string     `gorm:"column:otp_code"`
	OTPExpiresAt *time.Time `gorm:"column:otp_expires_at"`
}
