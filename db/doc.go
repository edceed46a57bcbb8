/*
Package db owns the database handle, the schema and every query.

# Opening a Store

Open picks the driver, connects and pings:

	store, err := db.Open(ctx, db.DriverPostgres, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

Supported drivers are postgres (github.com/lib/pq) and sqlite
(modernc.org/sqlite). SQLite stores use a single connection with a busy
timeout.

# Schema Creation

CreateSchema initializes all required tables:

	if err := store.CreateSchema(ctx); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - contacts: contact form messages
  - sentinelles: volunteer engagements
  - recoltes: field collection reports (sentinelle_id is a soft reference)
  - lab_tests: maceration batch measurements

Ids are server assigned and increasing (SERIAL on Postgres, AUTOINCREMENT
on SQLite). There are no foreign keys and no update or delete queries.

# Queries

Queries are written with $n placeholders and rewritten to ? for SQLite.

	id, err := store.InsertContact(ctx, req, now)
	rows, err := store.ListSentinelles(ctx) // id DESC
	rows, err := store.ListRecoltes(ctx)    // id DESC
	rows, err := store.ListLabTests(ctx)    // date_test ASC, id ASC

List methods return an empty, non-nil slice for an empty table.
*/
package db
