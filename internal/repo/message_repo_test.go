package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/go-ingest-backend/internal/domain"
)

func TestCreateMessage_InsertsWithGeneratedIDAndTimestamp(t *testing.T) {
	db := newRepoDB(t, &domain.User{}, &domain.Message{})
	ctx := context.Background()

	if _, err := UpsertUser(ctx, db, "42", "alice", nil); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	m, err := CreateMessage(ctx, db, "42", "hello")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if m.ID == "" || m.UserID != "42" || m.Message != "hello" {
		t.Fatalf("unexpected message: %+v", m)
	}
	if m.TS.IsZero() || time.Since(m.TS) > time.Minute {
		t.Fatalf("TS not set reasonably: %v", m.TS)
	}
}

func TestListMessages_OrderAscending(t *testing.T) {
	db := newRepoDB(t, &domain.User{}, &domain.Message{})
	ctx := context.Background()

	if _, err := UpsertUser(ctx, db, "u1", "alice", nil); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// deterministic ordering: same TS for first two; ID "a" before "b"
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(1 * time.Second)
	seed := []domain.Message{
		{ID: "b", UserID: "u1", Message: "y", TS: t0},
		{ID: "a", UserID: "u1", Message: "x", TS: t0},
		{ID: "z", UserID: "u1", Message: "late", TS: t1},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed %s: %v", seed[i].ID, err)
		}
	}

	got, err := ListMessages(ctx, db, "u1")
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "z" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestCountMessages_MissingTableSurfacesError(t *testing.T) {
	db := newRepoDB(t) // no migration at all

	if _, err := CountMessages(context.Background(), db, "u1"); err == nil {
		t.Fatal("CountMessages on missing table succeeded; want error")
	}
}

func TestCountMessages_PerUser(t *testing.T) {
	db := newRepoDB(t, &domain.User{}, &domain.Message{})
	ctx := context.Background()

	for _, id := range []string{"u1", "u2"} {
		if _, err := UpsertUser(ctx, db, id, "n-"+id, nil); err != nil {
			t.Fatalf("seed user %s: %v", id, err)
		}
	}
	for i := 0; i < 3; i++ {
		if _, err := CreateMessage(ctx, db, "u1", "m"); err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}
	if _, err := CreateMessage(ctx, db, "u2", "m"); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	n, err := CountMessages(ctx, db, "u1")
	if err != nil {
		t.Fatalf("CountMessages: %v", err)
	}
	if n != 3 {
		t.Fatalf("CountMessages(u1) = %d; want 3", n)
	}
}
