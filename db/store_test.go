package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cbet/sentinelles/models"
)

func ptr[T any](v T) *T { return &v }

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.CreateSchema(context.Background()); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}
	return store
}

func TestQuestionMarks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SELECT 1", "SELECT 1"},
		{"VALUES ($1, $2, $3)", "VALUES (?, ?, ?)"},
		{"VALUES ($10, $11)", "VALUES (?, ?)"},
		{"SELECT '$' || name WHERE id = $1", "SELECT '$' || name WHERE id = ?"},
	}

	for _, tt := range tests {
		if got := questionMarks(tt.in); got != tt.want {
			t.Errorf("questionMarks(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithBusyTimeout(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"test.db", "test.db?_pragma=busy_timeout(5000)"},
		{"file:test.db?mode=rwc", "file:test.db?mode=rwc&_pragma=busy_timeout(5000)"},
		{"test.db?_pragma=busy_timeout(100)", "test.db?_pragma=busy_timeout(100)"},
	}

	for _, tt := range tests {
		if got := withBusyTimeout(tt.in); got != tt.want {
			t.Errorf("withBusyTimeout(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "x"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restart.db")
	ctx := context.Background()

	// First "process"
	store, err := Open(ctx, DriverSQLite, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.CreateSchema(ctx); err != nil {
		t.Fatalf("first CreateSchema() error = %v", err)
	}
	if _, err := store.InsertSentinelle(ctx, models.SentinelleRequest{Prenom: "Marie", Nom: "Dupont", Email: "m@example.com"}, "2025-01-01T00:00:00.000Z"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	// Restart against the same file
	store, err = Open(ctx, DriverSQLite, path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for i := 0; i < 2; i++ {
		if err := store.CreateSchema(ctx); err != nil {
			t.Fatalf("CreateSchema() on existing store error = %v", err)
		}
	}

	rows, err := store.ListSentinelles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("expected existing row to survive restart, got %d rows", len(rows))
	}

	var tables int
	err = store.Conn().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('contacts', 'sentinelles', 'recoltes', 'lab_tests')`).Scan(&tables)
	if err != nil {
		t.Fatal(err)
	}
	if tables != 4 {
		t.Errorf("expected 4 tables, got %d", tables)
	}
}

func TestInsertContact_IncreasingIDs(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := store.InsertContact(ctx, models.ContactRequest{
			Nom:     "Dupont",
			Email:   "m@example.com",
			Message: "Bonjour",
		}, "2025-01-01T00:00:00.000Z")
		if err != nil {
			t.Fatalf("InsertContact() error = %v", err)
		}
		if id <= last {
			t.Errorf("id %d not greater than previous %d", id, last)
		}
		last = id
	}

	var prenom, sujet *string
	err := store.Conn().QueryRow(`SELECT prenom, sujet FROM contacts WHERE id = ?`, last).Scan(&prenom, &sujet)
	if err != nil {
		t.Fatal(err)
	}
	if prenom != nil || sujet != nil {
		t.Errorf("absent optional fields should be NULL, got prenom=%v sujet=%v", prenom, sujet)
	}
}

func TestListSentinelles_IDDesc(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	empty, err := store.ListSentinelles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", empty)
	}

	names := []string{"Alice", "Bruno", "Chloé"}
	for _, n := range names {
		if _, err := store.InsertSentinelle(ctx, models.SentinelleRequest{
			Prenom:    n,
			Nom:       "Martin",
			Email:     n + "@example.com",
			Telephone: ptr("0600000000"),
		}, "2025-03-01T10:00:00.000Z"); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := store.ListSentinelles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(names) {
		t.Fatalf("expected %d rows, got %d", len(names), len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].ID <= rows[i].ID {
			t.Errorf("rows not in descending id order: %d then %d", rows[i-1].ID, rows[i].ID)
		}
	}
	if rows[0].Prenom == nil || *rows[0].Prenom != "Chloé" {
		t.Errorf("expected newest sentinelle first, got %v", rows[0].Prenom)
	}
	if rows[0].Telephone == nil || *rows[0].Telephone != "0600000000" {
		t.Errorf("telephone not round-tripped: %v", rows[0].Telephone)
	}
}

func TestListRecoltes_IDDesc(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// Soft reference: no sentinelle 42 exists and that is fine
	first, err := store.InsertRecolte(ctx, models.RecolteRequest{
		SentinelleID: 42,
		Plante:       "Artemisia",
		DateHeure:    ptr("2025-06-01T08:30"),
		Latitude:     ptr(14.6928),
		Longitude:    ptr(-17.4467),
		EtatPlante:   ptr("floraison"),
	})
	if err != nil {
		t.Fatalf("InsertRecolte() error = %v", err)
	}
	second, err := store.InsertRecolte(ctx, models.RecolteRequest{SentinelleID: 7, Plante: "Moringa"})
	if err != nil {
		t.Fatal(err)
	}

	rows, err := store.ListRecoltes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != second || rows[1].ID != first {
		t.Errorf("expected ids [%d %d], got [%d %d]", second, first, rows[0].ID, rows[1].ID)
	}
	if rows[1].Latitude == nil || *rows[1].Latitude != 14.6928 {
		t.Errorf("latitude not round-tripped: %v", rows[1].Latitude)
	}
	if rows[0].Latitude != nil || rows[0].PhotoURL != nil {
		t.Errorf("absent fields should be null, got %v %v", rows[0].Latitude, rows[0].PhotoURL)
	}
	if rows[1].SentinelleID == nil || *rows[1].SentinelleID != 42 {
		t.Errorf("sentinelle_id not round-tripped: %v", rows[1].SentinelleID)
	}
}

func TestListLabTests_DateAsc(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// Inserted out of chronological order on purpose
	dates := []string{
		"2025-05-03T09:00:00.000Z",
		"2025-05-01T09:00:00.000Z",
		"2025-05-02T09:00:00.000Z",
		"2025-05-01T09:00:00.000Z",
	}
	for i, d := range dates {
		if _, err := store.InsertLabTest(ctx, models.LabTestRequest{
			LotID:          "LOT-1",
			PHValue:        4.2,
			JourMaceration: ptr(int64(i)),
			Temperature:    ptr(21.5),
			Technicien:     ptr("Awa"),
		}, d); err != nil {
			t.Fatalf("InsertLabTest() error = %v", err)
		}
	}

	rows, err := store.ListLabTests(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(dates) {
		t.Fatalf("expected %d rows, got %d", len(dates), len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if *rows[i-1].DateTest > *rows[i].DateTest {
			t.Errorf("rows not in date order: %s then %s", *rows[i-1].DateTest, *rows[i].DateTest)
		}
		if *rows[i-1].DateTest == *rows[i].DateTest && rows[i-1].ID > rows[i].ID {
			t.Errorf("ties should keep insertion order: %d then %d", rows[i-1].ID, rows[i].ID)
		}
	}
	if rows[0].PHValue == nil || *rows[0].PHValue != 4.2 {
		t.Errorf("ph_value not round-tripped: %v", rows[0].PHValue)
	}
}

// TestPostgresStore runs the same round trip against a real Postgres when
// TEST_DATABASE_URL is set.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	store, err := Open(ctx, DriverPostgres, dsn)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	_, err = store.Conn().Exec(`
		DROP TABLE IF EXISTS contacts;
		DROP TABLE IF EXISTS sentinelles;
		DROP TABLE IF EXISTS recoltes;
		DROP TABLE IF EXISTS lab_tests;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.CreateSchema(ctx); err != nil {
			t.Fatalf("CreateSchema() error = %v", err)
		}
	}

	id, err := store.InsertContact(ctx, models.ContactRequest{
		Nom: "Dupont", Prenom: ptr("Marie"), Email: "m@example.com", Sujet: ptr("Info"), Message: "Bonjour",
	}, "2025-01-01T00:00:00.000Z")
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("expected first contact id 1, got %d", id)
	}

	if _, err := store.InsertSentinelle(ctx, models.SentinelleRequest{Prenom: "Marie", Nom: "Dupont", Email: "m@example.com"}, "2025-01-01T00:00:00.000Z"); err != nil {
		t.Fatal(err)
	}
	rows, err := store.ListSentinelles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Telephone != nil {
		t.Errorf("unexpected sentinelles: %+v", rows)
	}
}
