package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/invera/website-backend/internal/docstore"
)

func newTestStore(t *testing.T) *docstore.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString())

	s, err := docstore.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// failingStore simulates an unreachable document store.
type failingStore struct{ err error }

func (f failingStore) InsertOne(context.Context, string, any) error { return f.err }
func (f failingStore) FindAll(context.Context, string, int) ([]json.RawMessage, error) {
	return nil, f.err
}

func TestStatus_Create_GeneratesIDAndTimestamp(t *testing.T) {
	svc := NewStatusService(newTestStore(t))

	before := time.Now().UTC()
	check, err := svc.Create(context.Background(), "acme-bot")
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := uuid.Parse(check.ID); err != nil {
		t.Errorf("id %q is not a UUID: %v", check.ID, err)
	}
	if check.ClientName != "acme-bot" {
		t.Errorf("client_name=%q", check.ClientName)
	}
	if check.Timestamp.Before(before) || check.Timestamp.After(after) {
		t.Errorf("timestamp %v outside [%v, %v]", check.Timestamp, before, after)
	}
}

func TestStatus_Create_IDsAreUnique(t *testing.T) {
	svc := NewStatusService(newTestStore(t))
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		check, err := svc.Create(context.Background(), "dup-client")
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if seen[check.ID] {
			t.Fatalf("duplicate id %q", check.ID)
		}
		seen[check.ID] = true
	}
}

func TestStatus_CreateThenList_RoundTrip(t *testing.T) {
	svc := NewStatusService(newTestStore(t))

	created, err := svc.Create(context.Background(), "acme-bot")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	checks, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(checks) != 1 {
		t.Fatalf("got %d checks, want 1", len(checks))
	}
	got := checks[0]
	if got.ClientName != created.ClientName || got.ID != created.ID {
		t.Fatalf("round trip mismatch: %+v != %+v", got, created)
	}
	if !got.Timestamp.Equal(created.Timestamp) {
		t.Fatalf("timestamp changed across round trip: %v != %v", got.Timestamp, created.Timestamp)
	}
}

func TestStatus_List_CappedAt1000(t *testing.T) {
	store := newTestStore(t)
	svc := NewStatusService(store)
	ctx := context.Background()

	// Seed past the cap through the store directly to keep this fast.
	for i := 0; i < 1005; i++ {
		doc := map[string]any{
			"id":          uuid.NewString(),
			"client_name": "bulk",
			"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
		}
		if err := store.InsertOne(ctx, docstore.StatusChecks, doc); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	checks, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(checks) != 1000 {
		t.Fatalf("got %d checks, want 1000", len(checks))
	}
}

func TestStatus_List_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("store unreachable")
	svc := NewStatusService(failingStore{err: storeErr})

	if _, err := svc.List(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestStatus_Create_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("store unreachable")
	svc := NewStatusService(failingStore{err: storeErr})

	if _, err := svc.Create(context.Background(), "x"); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
