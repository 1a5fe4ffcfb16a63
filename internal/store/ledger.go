package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/dmaskell/ledgerview-backend/internal/dto"
	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

type ledgerStore struct {
	client *firestore.Client
}

func NewLedgerStore(client *firestore.Client) *ledgerStore {
	return &ledgerStore{client: client}
}

func (s *ledgerStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("ledger_entries")
}

// Query runs the compiled predicate. Date bounds and ordering run in
// Firestore; status, direction, transfer, and filter clauses are evaluated
// here per entry, since Firestore cannot express the OR groups.
func (s *ledgerStore) Query(ctx context.Context, uid string, q dto.LedgerQuery) ([]*models.LedgerEntry, error) {
	docs, err := s.collection(uid).
		Where("date", ">=", q.DateFrom).
		Where("date", "<=", q.DateTo).
		OrderBy("date", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to query ledger entries", err)
	}

	entries := make([]*models.LedgerEntry, 0, len(docs))
	for _, d := range docs {
		var e models.LedgerEntry
		if err := d.DataTo(&e); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse ledger entry", err)
		}
		if q.Matches(&e) {
			entries = append(entries, &e)
		}
	}
	return entries, nil
}
