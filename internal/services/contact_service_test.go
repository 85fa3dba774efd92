package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/invera/website-backend/internal/docstore"
	"github.com/invera/website-backend/internal/domain"
	"github.com/invera/website-backend/internal/email"
)

// stubSender records the last message and returns a fixed id or error.
type stubSender struct {
	id   string
	err  error
	last *email.Message
}

func (s *stubSender) Send(_ context.Context, msg email.Message) (string, error) {
	s.last = &msg
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func validRequest() domain.ContactFormRequest {
	return domain.ContactFormRequest{
		Name:    "Jo",
		Email:   "jo@x.com",
		Company: "Acme",
		Message: "hi",
	}
}

func TestContact_Submit_Success(t *testing.T) {
	store := newTestStore(t)
	sender := &stubSender{id: "msg_123"}
	svc := NewContactService(store, sender, "onboarding@resend.dev", "ops@invera.com")

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Status != "success" || res.Message == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.EmailID == nil || *res.EmailID != "msg_123" {
		t.Fatalf("email_id=%v, want msg_123", res.EmailID)
	}

	// Exactly one archived submission carrying the provider id.
	docs, err := store.FindAll(context.Background(), docstore.ContactSubmissions, 1000)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d submissions, want 1", len(docs))
	}
	var sub domain.ContactSubmission
	if err := json.Unmarshal(docs[0], &sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.Email != "jo@x.com" || sub.Company != "Acme" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if sub.EmailID == nil || *sub.EmailID != "msg_123" {
		t.Fatalf("persisted email_id=%v, want msg_123", sub.EmailID)
	}
	if sub.ID == "" || sub.Timestamp.IsZero() {
		t.Fatalf("submission missing server-generated fields: %+v", sub)
	}
}

func TestContact_Submit_MessageAddressing(t *testing.T) {
	sender := &stubSender{id: "e1"}
	svc := NewContactService(newTestStore(t), sender, "from@invera.com", "to@invera.com")

	if _, err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sender.last == nil {
		t.Fatal("sender not invoked")
	}
	if sender.last.From != "from@invera.com" {
		t.Errorf("from=%q", sender.last.From)
	}
	if len(sender.last.To) != 1 || sender.last.To[0] != "to@invera.com" {
		t.Errorf("to=%v", sender.last.To)
	}
	if sender.last.Subject != "New Contact Form Submission from Jo" {
		t.Errorf("subject=%q", sender.last.Subject)
	}
	if !strings.Contains(sender.last.HTML, "Acme") {
		t.Errorf("body missing company value")
	}
}

func TestContact_Submit_EmptyCompanyOmittedFromBody(t *testing.T) {
	sender := &stubSender{id: "e1"}
	svc := NewContactService(newTestStore(t), sender, "f@x.com", "t@x.com")

	req := validRequest()
	req.Company = ""
	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if strings.Contains(sender.last.HTML, "Company:") {
		t.Fatal("company block must be omitted when company is empty")
	}
}

func TestContact_Submit_DispatchFailurePersistsNothing(t *testing.T) {
	store := newTestStore(t)
	sender := &stubSender{err: errors.New("provider exploded")}
	svc := NewContactService(store, sender, "f@x.com", "t@x.com")

	_, err := svc.Submit(context.Background(), validRequest())
	if !errors.Is(err, ErrDispatchFailed) {
		t.Fatalf("expected ErrDispatchFailed, got %v", err)
	}

	n, err := store.Count(context.Background(), docstore.ContactSubmissions)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("submission persisted despite dispatch failure (count=%d)", n)
	}
}

func TestContact_Submit_MissingProviderIDYieldsNull(t *testing.T) {
	store := newTestStore(t)
	svc := NewContactService(store, &stubSender{id: ""}, "f@x.com", "t@x.com")

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.EmailID != nil {
		t.Fatalf("email_id=%v, want nil", res.EmailID)
	}

	docs, _ := store.FindAll(context.Background(), docstore.ContactSubmissions, 1)
	var sub domain.ContactSubmission
	if err := json.Unmarshal(docs[0], &sub); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sub.EmailID != nil {
		t.Fatalf("persisted email_id=%v, want null", sub.EmailID)
	}
}

func TestContact_Submit_StoreFailureAfterDispatchIsNotDispatchError(t *testing.T) {
	storeErr := errors.New("store unreachable")
	svc := NewContactService(failingStore{err: storeErr}, &stubSender{id: "e1"}, "f@x.com", "t@x.com")

	_, err := svc.Submit(context.Background(), validRequest())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if errors.Is(err, ErrDispatchFailed) {
		t.Fatal("store failure must stay distinct from the dispatch path")
	}
}
