// migrate applies pending schema migrations.
// Run: go run ./cmd/migrate
package main

import (
	"log"
	"os"

	"github.com/ErlanBelekov/superpoll-api/internal/infrastructure/postgres"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("migrations applied")
}
