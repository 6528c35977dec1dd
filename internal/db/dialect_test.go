package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestDetectDialectFromDSN(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/recruit":         DialectPostgres,
		"postgresql://localhost/recruit":                DialectPostgres,
		"host=localhost dbname=recruit sslmode=disable": DialectPostgres,
		"data/recruit.db":                               DialectSQLite,
		"file:recruit.db?cache=shared":                  DialectSQLite,
		"sqlite://data/recruit.db":                      DialectSQLite,
	}
	for dsn, want := range cases {
		got, err := detectDialectFromDSN(dsn)
		if err != nil {
			t.Fatalf("detect %q: %v", dsn, err)
		}
		if got != want {
			t.Fatalf("detect %q = %q, want %q", dsn, got, want)
		}
	}
	if _, err := detectDialectFromDSN("mysql://localhost/recruit"); err == nil {
		t.Fatalf("expected error for mysql dsn")
	}
}

func TestEnsureSQLiteParams(t *testing.T) {
	got := ensureSQLiteParams("data/recruit.db")
	want := "data/recruit.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if got != want {
		t.Fatalf("ensureSQLiteParams = %q, want %q", got, want)
	}

	got = ensureSQLiteParams("file:x.db?_pragma=foreign_keys(1)")
	want = "file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if got != want {
		t.Fatalf("ensureSQLiteParams = %q, want %q", got, want)
	}
}

func TestSQLitePathFromDSN(t *testing.T) {
	cases := map[string]string{
		"data/recruit.db":                   "data/recruit.db",
		"data/recruit.db?_pragma=x":         "data/recruit.db",
		"file:data/recruit.db?cache=shared": "data/recruit.db",
		"file::memory:?cache=shared":        "",
		"file:t1?mode=memory&cache=shared":  "",
		":memory:":                          "",
	}
	for dsn, want := range cases {
		if got := sqlitePathFromDSN(dsn); got != want {
			t.Fatalf("sqlitePathFromDSN(%q) = %q, want %q", dsn, got, want)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey to match")
	}
	if !IsUniqueViolation(fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatalf("expected pg 23505 to match")
	}
	if !IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: admins.username (2067)")) {
		t.Fatalf("expected sqlite message to match")
	}
	if IsUniqueViolation(errors.New("disk I/O error")) || IsUniqueViolation(nil) {
		t.Fatalf("unexpected match")
	}
}
