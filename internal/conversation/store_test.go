package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/concierge-dev/concierge/internal/sqlc"
)

// mockQuerier implements Querier with call tracking for unit tests.
type mockQuerier struct {
	getRow sqlc.ConversationSession
	getErr error

	appendCalls []sqlc.AppendConversationTurnsParams
	appendErr   error
}

func (m *mockQuerier) GetConversationSession(_ context.Context, _ string) (sqlc.ConversationSession, error) {
	return m.getRow, m.getErr
}

func (m *mockQuerier) AppendConversationTurns(_ context.Context, arg sqlc.AppendConversationTurnsParams) error {
	m.appendCalls = append(m.appendCalls, arg)
	return m.appendErr
}

func TestStore_Turns(t *testing.T) {
	mock := &mockQuerier{
		getRow: sqlc.ConversationSession{
			SessionID: "s1",
			Turns:     []byte(`[{"user":"hi","model":"hello"},{"user":"when?","model":"at 9"}]`),
		},
	}
	store := New(mock, nil)

	turns, err := store.Turns(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Turns() error = %v", err)
	}

	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].User != "hi" || turns[0].Model != "hello" {
		t.Errorf("first turn = %+v", turns[0])
	}
	if turns[1].User != "when?" || turns[1].Model != "at 9" {
		t.Errorf("second turn = %+v", turns[1])
	}
}

func TestStore_Turns_UnknownSession(t *testing.T) {
	mock := &mockQuerier{getErr: pgx.ErrNoRows}
	store := New(mock, nil)

	turns, err := store.Turns(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("Turns() error = %v, want nil for unknown session", err)
	}
	if turns == nil {
		t.Error("Turns() returned nil, want empty slice")
	}
	if len(turns) != 0 {
		t.Errorf("expected 0 turns, got %d", len(turns))
	}
}

func TestStore_Turns_EmptyArray(t *testing.T) {
	mock := &mockQuerier{
		getRow: sqlc.ConversationSession{SessionID: "s1", Turns: []byte(`[]`)},
	}
	store := New(mock, nil)

	turns, err := store.Turns(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Turns() error = %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected 0 turns, got %d", len(turns))
	}
}

func TestStore_Turns_EmptySessionID(t *testing.T) {
	store := New(&mockQuerier{}, nil)

	if _, err := store.Turns(context.Background(), ""); err == nil {
		t.Error("Turns() accepted an empty session id")
	}
}

func TestStore_Turns_DatabaseError(t *testing.T) {
	dbErr := errors.New("connection reset")
	mock := &mockQuerier{getErr: dbErr}
	store := New(mock, nil)

	if _, err := store.Turns(context.Background(), "s1"); !errors.Is(err, dbErr) {
		t.Errorf("Turns() error = %v, want wrapped %v", err, dbErr)
	}
}

func TestStore_Turns_CorruptJSON(t *testing.T) {
	mock := &mockQuerier{
		getRow: sqlc.ConversationSession{SessionID: "s1", Turns: []byte(`not json`)},
	}
	store := New(mock, nil)

	if _, err := store.Turns(context.Background(), "s1"); err == nil {
		t.Error("Turns() accepted corrupt stored turns")
	}
}

func TestStore_AppendTurn(t *testing.T) {
	mock := &mockQuerier{}
	store := New(mock, nil)

	turn := Turn{User: "what time is the keynote?", Model: "9am in Hall A."}
	if err := store.AppendTurn(context.Background(), "s1", turn); err != nil {
		t.Fatalf("AppendTurn() error = %v", err)
	}

	if len(mock.appendCalls) != 1 {
		t.Fatalf("expected 1 append call, got %d", len(mock.appendCalls))
	}
	got := mock.appendCalls[0]
	if got.SessionID != "s1" {
		t.Errorf("SessionID = %q, want s1", got.SessionID)
	}

	var appended []Turn
	if err := json.Unmarshal(got.Turns, &appended); err != nil {
		t.Fatalf("appended payload is not a JSON turn array: %v", err)
	}
	if len(appended) != 1 || appended[0] != turn {
		t.Errorf("appended payload = %+v, want [%+v]", appended, turn)
	}
}

func TestStore_AppendTurn_EmptySessionID(t *testing.T) {
	mock := &mockQuerier{}
	store := New(mock, nil)

	if err := store.AppendTurn(context.Background(), "", Turn{User: "q", Model: "a"}); err == nil {
		t.Error("AppendTurn() accepted an empty session id")
	}
	if len(mock.appendCalls) != 0 {
		t.Error("AppendTurn() hit the database with an empty session id")
	}
}

func TestStore_AppendTurn_DatabaseError(t *testing.T) {
	dbErr := errors.New("deadlock detected")
	mock := &mockQuerier{appendErr: dbErr}
	store := New(mock, nil)

	err := store.AppendTurn(context.Background(), "s1", Turn{User: "q", Model: "a"})
	if !errors.Is(err, dbErr) {
		t.Errorf("AppendTurn() error = %v, want wrapped %v", err, dbErr)
	}
}
