package database

import (
	"context"
	"fmt"
)

// EnsureSchema creates the three portal tables if they do not exist yet.
// The attendance table carries the composite uniqueness constraint on
// (employee_id, work_date) so that duplicate admissions are rejected at
// the storage boundary even under concurrent writers.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY,
			full_name TEXT NOT NULL,
			phone TEXT,
			email TEXT,
			position TEXT,
			wage_rate NUMERIC NOT NULL DEFAULT 0 CHECK (wage_rate >= 0),
			start_date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			employee_id UUID REFERENCES employees(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendances (
			id UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			work_date DATE NOT NULL,
			work_hours DOUBLE PRECISION NOT NULL,
			note TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT unique_employee_date UNIQUE (employee_id, work_date)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
