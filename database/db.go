package database

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the store database. The default DSN is an in-memory
// SQLite database: all state lives for the process lifetime only, and
// every start begins from the seed dataset.
func Connect() {
	// .env is optional; variables may come from the environment directly.
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}

	// A single connection keeps the in-memory database alive and gives
	// mutations the single-writer discipline the store relies on.
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("could not access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
}
