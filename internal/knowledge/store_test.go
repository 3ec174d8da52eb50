package knowledge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/concierge-dev/concierge/internal/sqlc"
)

// mockQuerier implements Querier with call tracking for unit tests.
type mockQuerier struct {
	upsertCalls []sqlc.UpsertKnowledgeEntryParams
	upsertErr   error

	listRows []sqlc.KnowledgeEntry
	listErr  error
}

func (m *mockQuerier) UpsertKnowledgeEntry(_ context.Context, arg sqlc.UpsertKnowledgeEntryParams) error {
	m.upsertCalls = append(m.upsertCalls, arg)
	return m.upsertErr
}

func (m *mockQuerier) ListKnowledgeEntries(_ context.Context) ([]sqlc.KnowledgeEntry, error) {
	return m.listRows, m.listErr
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestStore_Upsert(t *testing.T) {
	mock := &mockQuerier{}
	store := New(mock, nil)

	err := store.Upsert(context.Background(), "schedule", "Day 1: keynotes", "gs://bucket/schedule.pdf")
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if len(mock.upsertCalls) != 1 {
		t.Fatalf("expected 1 upsert call, got %d", len(mock.upsertCalls))
	}
	got := mock.upsertCalls[0]
	if got.ID != "schedule" {
		t.Errorf("ID = %q, want schedule", got.ID)
	}
	if got.Summary != "Day 1: keynotes" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if got.SourceFile != "gs://bucket/schedule.pdf" {
		t.Errorf("SourceFile = %q", got.SourceFile)
	}
}

func TestStore_Upsert_EmptyID(t *testing.T) {
	mock := &mockQuerier{}
	store := New(mock, nil)

	if err := store.Upsert(context.Background(), "", "summary", "gs://b/f"); err == nil {
		t.Error("Upsert() accepted an empty id")
	}
	if len(mock.upsertCalls) != 0 {
		t.Error("Upsert() hit the database with an empty id")
	}
}

func TestStore_Upsert_DatabaseError(t *testing.T) {
	dbErr := errors.New("connection refused")
	mock := &mockQuerier{upsertErr: dbErr}
	store := New(mock, nil)

	err := store.Upsert(context.Background(), "schedule", "summary", "gs://b/f")
	if !errors.Is(err, dbErr) {
		t.Errorf("Upsert() error = %v, want wrapped %v", err, dbErr)
	}
}

func TestStore_ListAll(t *testing.T) {
	now := time.Now()
	mock := &mockQuerier{
		listRows: []sqlc.KnowledgeEntry{
			{ID: "a", Summary: "first", SourceFile: "gs://b/a.txt", UpdatedAt: timestamptz(now)},
			{ID: "b", Summary: "second", SourceFile: "gs://b/b.pdf", UpdatedAt: timestamptz(now)},
		},
	}
	store := New(mock, nil)

	entries, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("entries out of order: %q, %q", entries[0].ID, entries[1].ID)
	}
	if entries[0].Summary != "first" {
		t.Errorf("Summary = %q, want first", entries[0].Summary)
	}
	if !entries[0].UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", entries[0].UpdatedAt, now)
	}
}

func TestStore_ListAll_Empty(t *testing.T) {
	mock := &mockQuerier{}
	store := New(mock, nil)

	entries, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if entries == nil {
		t.Error("ListAll() returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestStore_ListAll_DatabaseError(t *testing.T) {
	dbErr := errors.New("timeout")
	mock := &mockQuerier{listErr: dbErr}
	store := New(mock, nil)

	if _, err := store.ListAll(context.Background()); !errors.Is(err, dbErr) {
		t.Errorf("ListAll() error = %v, want wrapped %v", err, dbErr)
	}
}
