// Package services – StatusService
//
// This file implements the StatusService, which records and lists
// status-check entries. Identifiers and timestamps are generated here;
// client-supplied values for those fields are never read.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invera/website-backend/internal/docstore"
	"github.com/invera/website-backend/internal/domain"
)

// listLimit caps how many status checks a single list call returns.
const listLimit = 1000

// Store is the document-store contract required by the services.
// *docstore.Store satisfies it.
type Store interface {
	// InsertOne appends one JSON document to the collection.
	InsertOne(ctx context.Context, collection string, v any) error

	// FindAll returns up to limit documents in insertion order.
	FindAll(ctx context.Context, collection string, limit int) ([]json.RawMessage, error)
}

// StatusService creates and lists status-check records.
type StatusService struct {
	Store Store
}

// NewStatusService constructs a StatusService backed by the given store.
func NewStatusService(store Store) *StatusService {
	return &StatusService{Store: store}
}

// Create records a status check for clientName with a fresh UUID and the
// current UTC instant, and returns the stored record. Duplicate client
// names are permitted; no uniqueness check is made.
func (s *StatusService) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.Store.InsertOne(ctx, docstore.StatusChecks, check); err != nil {
		return nil, err
	}
	return check, nil
}

// List returns up to 1000 status checks in insertion order, decoding each
// stored document (string timestamp included) back into a StatusCheck.
func (s *StatusService) List(ctx context.Context) ([]domain.StatusCheck, error) {
	docs, err := s.Store.FindAll(ctx, docstore.StatusChecks, listLimit)
	if err != nil {
		return nil, err
	}

	checks := make([]domain.StatusCheck, 0, len(docs))
	for _, raw := range docs {
		var c domain.StatusCheck
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode status check: %w", err)
		}
		checks = append(checks, c)
	}
	return checks, nil
}
