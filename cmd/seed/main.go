package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/agrosense/identity-service/config"
	"github.com/agrosense/identity-service/internal/domain/entity"
	"github.com/agrosense/identity-service/pkg/helpers"
)

// Seeds the fixed administrative account. The predetermined id and
// creation time go through entity.Reconstitute, the only code path
// allowed to supply them.
const (
	adminID    = "8f7b1c2e-9a14-4d14-9c61-3a47d52f0a01"
	adminName  = "admin"
	adminEmail = "admin@agrosense.io"
)

var adminCreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "12345"
	}

	hasher := helpers.NewBcryptHasher()
	hash, err := hasher.Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin, err := entity.Reconstitute(adminID, adminName, adminEmail, hash, adminCreatedAt)
	if err != nil {
		log.Fatalf("invalid admin account: %v", err)
	}

	res, err := db.Exec(`
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`, admin.ID, admin.Name, admin.Email, admin.PasswordHash, admin.CreatedAt)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		fmt.Printf("admin already present: email=%s\n", admin.Email)
		return
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", admin.ID, admin.Email)
}
