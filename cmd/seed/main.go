// seed upserts an admin account into the local dev database so the
// admin-only survey endpoint can be exercised.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	"github.com/ErlanBelekov/superpoll-api/internal/infrastructure/cryptography"
	"github.com/ErlanBelekov/superpoll-api/internal/infrastructure/postgres"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type seedConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`
	Email       string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@superpoll.local" validate:"required,email"`
	Password    string `env:"SEED_ADMIN_PASSWORD,required" validate:"required,min=8"`
	Name        string `env:"SEED_ADMIN_NAME" envDefault:"Admin" validate:"required"`
	BcryptCost  int    `env:"BCRYPT_COST" envDefault:"12" validate:"min=4,max=31"`
}

func main() {
	ctx := context.Background()

	var cfg seedConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := cryptography.NewBcryptHasher(cfg.BcryptCost).Hash(ctx, cfg.Password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Re-running resets the password and promotes the account.
	var id string
	err = pool.QueryRow(ctx, `
		INSERT INTO accounts (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, password = EXCLUDED.password, role = EXCLUDED.role
		RETURNING id`,
		cfg.Name, cfg.Email, hash, domain.RoleAdmin,
	).Scan(&id)
	if err != nil {
		log.Fatalf("upsert admin: %v", err)
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Admin:    %s\n", cfg.Email)
	fmt.Printf("  Admin ID: %s\n", id)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 - sign in as the admin:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/api/sign-in \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"...\"}'\n", cfg.Email)
	fmt.Println()
	fmt.Println("  Step 2 - create a survey with the returned token:")
	fmt.Println()
	fmt.Println("    curl -s -X POST http://localhost:8080/api/add-survey \\")
	fmt.Println("      -H 'Content-Type: application/json' -H \"x-access-token: $TOKEN\" \\")
	fmt.Println("      -d '{\"question\":\"Best language?\",\"answers\":[{\"answer\":\"Go\"}]}'")
	fmt.Println()
	fmt.Println("  Step 3 - list surveys:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/api/surveys -H \"x-access-token: $TOKEN\"")
}
