package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

type preferenceStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewPreferenceStore(client *firestore.Client) *preferenceStore {
	return &preferenceStore{
		Client:     client,
		Collection: client.Collection("users"),
	}
}

// Get reads the preference fields off the user document. A missing document
// is not an error; defaults apply downstream.
func (s *preferenceStore) Get(ctx context.Context, uid string) (*models.UserPreferences, error) {
	doc, err := s.Collection.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &models.UserPreferences{}, nil
		}
		return nil, errs.NewDatabaseError("read", "failed to get user preferences", err)
	}
	var prefs models.UserPreferences
	if err := doc.DataTo(&prefs); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse user preferences", err)
	}
	return &prefs, nil
}
