package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

type categoryStore struct {
	client *firestore.Client
}

func NewCategoryStore(client *firestore.Client) *categoryStore {
	return &categoryStore{client: client}
}

func (s *categoryStore) Find(ctx context.Context, uid string) ([]*models.Category, error) {
	docs, err := s.client.Collection("users").Doc(uid).Collection("categories").Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list categories", err)
	}
	categories := make([]*models.Category, 0, len(docs))
	for _, d := range docs {
		var c models.Category
		if err := d.DataTo(&c); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse category", err)
		}
		categories = append(categories, &c)
	}
	return categories, nil
}
