package initializers

import "github.com/Shubhamsh1838/Highway-delite/internals/models"

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Note{},
	)
	if err != nil {
		panic("Failed to migrate database")
	}
}
