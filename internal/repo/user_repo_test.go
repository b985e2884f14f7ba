package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-ingest-backend/internal/domain"
)

// test DB helper
func newRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestUpsertUser_InsertsNewRow(t *testing.T) {
	db := newRepoDB(t, &domain.User{})
	ctx := context.Background()

	dn := "Alice"
	u, err := UpsertUser(ctx, db, "42", "alice", &dn)
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	if u.ID != "42" || u.Username != "alice" || u.DisplayName == nil || *u.DisplayName != "Alice" {
		t.Fatalf("unexpected user: %+v", u)
	}

	got, err := GetUser(ctx, db, "42")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestUpsertUser_LastWriteWins(t *testing.T) {
	db := newRepoDB(t, &domain.User{})
	ctx := context.Background()

	if _, err := UpsertUser(ctx, db, "42", "alice", nil); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	dn := "Alice"
	if _, err := UpsertUser(ctx, db, "42", "alice2", &dn); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	total, err := CountUsers(ctx, db)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if total != 1 {
		t.Fatalf("user rows = %d; want exactly 1", total)
	}

	got, err := GetUser(ctx, db, "42")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Username != "alice2" || got.DisplayName == nil || *got.DisplayName != "Alice" {
		t.Fatalf("overwrite not applied: %+v", got)
	}
}

// A re-ingestion that omits the display name clears a previously stored
// value. That is the documented last-write-wins contract (no merging of
// partial fields), pinned here on purpose rather than "fixed".
func TestUpsertUser_OmittedDisplayNameClearsStoredValue(t *testing.T) {
	db := newRepoDB(t, &domain.User{})
	ctx := context.Background()

	dn := "Alice"
	if _, err := UpsertUser(ctx, db, "42", "alice", &dn); err != nil {
		t.Fatalf("seed upsert: %v", err)
	}
	if _, err := UpsertUser(ctx, db, "42", "alice", nil); err != nil {
		t.Fatalf("clearing upsert: %v", err)
	}

	got, err := GetUser(ctx, db, "42")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.DisplayName != nil {
		t.Fatalf("DisplayName = %q; want NULL after omitting the field", *got.DisplayName)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db := newRepoDB(t, &domain.User{})

	_, err := GetUser(context.Background(), db, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetUser err = %v; want ErrNotFound", err)
	}
}
