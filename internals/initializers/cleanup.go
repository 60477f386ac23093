package initializers

import (
	"log"
	"time"

	"github.com/Shubhamsh1838/Highway-delite/internals/models"
)

// StartCleanup runs a background janitor that keeps the users table from
// accumulating abandoned registrations.
func StartCleanup(intervalMinutes int) {
	ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)

	go func() {
		for range ticker.C {
			// Unscoped() performs a hard delete, bypassing GORM's soft
			// delete, so abandoned signups are physically removed.

			// Purge users that registered but never verified within 24 hours.
			// Google-created accounts are verified on creation and never match.
			result := DB.Unscoped().
				Where("is_verified = ? AND created_at < ?", false, time.Now().Add(-24*time.Hour)).
				Delete(&models.User{})

			if result.RowsAffected > 0 {
				log.Printf("Janitor: Cleaned %d unverified users", result.RowsAffected)
			}
		}
	}()
}
