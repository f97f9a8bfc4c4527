package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CokeFamer_Go/internal/bootstrap"
	"github.com/osse101/CokeFamer_Go/internal/config"
)

// setup prepares the configured save backend. For postgres it creates the
// database when missing; every backend is then opened once to migrate it.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	if cfg.StorageBackend == config.BackendPostgres && cfg.DatabaseURL == "" {
		if err := ensureDatabase(ctx, cfg); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Running migrations...")
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to migrate save storage: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Fatalf("Failed to close save storage: %v", err)
	}
	fmt.Printf("%s storage ready.\n", cfg.StorageBackend)
}

// ensureDatabase connects to the server's maintenance database and creates
// cfg.DBName if it does not exist.
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
