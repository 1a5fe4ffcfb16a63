package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

type payeeStore struct {
	client *firestore.Client
}

func NewPayeeStore(client *firestore.Client) *payeeStore {
	return &payeeStore{client: client}
}

func (s *payeeStore) Find(ctx context.Context, uid string) ([]*models.Payee, error) {
	docs, err := s.client.Collection("users").Doc(uid).Collection("payees").Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list payees", err)
	}
	payees := make([]*models.Payee, 0, len(docs))
	for _, d := range docs {
		var p models.Payee
		if err := d.DataTo(&p); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse payee", err)
		}
		payees = append(payees, &p)
	}
	return payees, nil
}
