package initializers

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle, opened once at startup.
var DB *gorm.DB

func ConnectToDb(dsn string) {
	var err error
	log.Println("Connecting to database at:", dsn)

	// TranslateError surfaces unique-index violations as
	// gorm.ErrDuplicatedKey so the stores can map them.
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect to DB")
	}
}
