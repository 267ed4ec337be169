package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ConnectPostgres opens and pings a postgres connection.
func ConnectPostgres(url string) (*sql.DB, error) {
	database, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// Migrate creates the relational layout: a products base table plus one
// attribute sub-table per type, and the append-only ticket tables.
func Migrate(database *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 0),
			price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
			type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS flower_attributes (
			product_id INTEGER PRIMARY KEY REFERENCES products(id),
			color TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tree_attributes (
			product_id INTEGER PRIMARY KEY REFERENCES products(id),
			height NUMERIC(8,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS decoration_attributes (
			product_id INTEGER PRIMARY KEY REFERENCES products(id),
			material TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tickets (
			id SERIAL PRIMARY KEY,
			date TIMESTAMPTZ NOT NULL,
			total NUMERIC(12,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ticket_lines (
			id SERIAL PRIMARY KEY,
			ticket_id INTEGER NOT NULL REFERENCES tickets(id),
			product_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			unit_price NUMERIC(12,2) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0)
		)`,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, stmt := range statements {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
