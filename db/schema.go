package db

import (
	"context"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func (s *Store) CreateSchema(ctx context.Context) error {
	for _, stmt := range s.dialect.schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Column layout is shared by both dialects; only the id column differs.
// Dates are TEXT holding models.TimestampLayout values.
const (
	contactsColumns = `
    nom TEXT,
    prenom TEXT,
    email TEXT,
    sujet TEXT,
    message TEXT,
    date TEXT`

	sentinellesColumns = `
    prenom TEXT,
    nom TEXT,
    email TEXT,
    telephone TEXT,
    date_signature TEXT`

	recoltesColumns = `
    sentinelle_id INTEGER,
    plante TEXT,
    date_heure TEXT,
    latitude REAL,
    longitude REAL,
    photo_url TEXT,
    etat_plante TEXT,
    commentaire TEXT`

	labTestsColumns = `
    lot_id TEXT,
    ph_value REAL,
    jour_maceration INTEGER,
    temperature REAL,
    date_test TEXT,
    technicien TEXT`
)

func buildSchema(idColumn string) []string {
	table := func(name, columns string) string {
		return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n    id %s,%s\n)", name, idColumn, columns)
	}

	return []string{
		table("contacts", contactsColumns),
		table("sentinelles", sentinellesColumns),
		table("recoltes", recoltesColumns),
		table("lab_tests", labTestsColumns),
		`CREATE INDEX IF NOT EXISTS idx_lab_tests_date_test ON lab_tests(date_test)`,
	}
}

var (
	postgresSchema = buildSchema("SERIAL PRIMARY KEY")

	// AUTOINCREMENT keeps ids strictly increasing even after the highest row is gone.
	sqliteSchema = buildSchema("INTEGER PRIMARY KEY AUTOINCREMENT")
)
