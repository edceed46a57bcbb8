package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names accepted by Open.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type dialect struct {
	name   string
	schema []string
	rebind func(query string) string
}

var dialects = map[string]dialect{
	DriverPostgres: {name: DriverPostgres, schema: postgresSchema, rebind: func(q string) string { return q }},
	DriverSQLite:   {name: DriverSQLite, schema: sqliteSchema, rebind: questionMarks},
}

// Store is the handle every handler receives. It owns the connection pool;
// each query acquires and releases a connection on its own.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if driver == DriverSQLite {
		dsn = withBusyTimeout(dsn)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; serialise through one connection.
	if driver == DriverSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: conn, dialect: d}, nil
}

// Driver reports which dialect the store speaks.
func (s *Store) Driver() string {
	return s.dialect.name
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Conn returns the underlying sql.DB
func (s *Store) Conn() *sql.DB {
	return s.db
}

// insert runs an INSERT ... RETURNING id written with $n placeholders.
func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, s.dialect.rebind(query), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// questionMarks rewrites $1, $2, ... into SQLite's positional ? markers.
// Arguments are always passed in placeholder order.
func questionMarks(query string) string {
	var b strings.Builder
	b.Grow(len(query))

	for i := 0; i < len(query); i++ {
		c := query[i]
		if c == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)"
}
