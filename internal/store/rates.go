package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/dmaskell/ledgerview-backend/internal/errs"
	"github.com/dmaskell/ledgerview-backend/internal/models"
)

// exchangeRateStore reads the shared latest-rates snapshot maintained by the
// rate sync job. One document per directed currency pair.
type exchangeRateStore struct {
	client *firestore.Client
}

func NewExchangeRateStore(client *firestore.Client) *exchangeRateStore {
	return &exchangeRateStore{client: client}
}

func (s *exchangeRateStore) LatestRates(ctx context.Context) ([]*models.ExchangeRate, error) {
	docs, err := s.client.Collection("exchange_rates").Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list exchange rates", err)
	}
	rates := make([]*models.ExchangeRate, 0, len(docs))
	for _, d := range docs {
		var r models.ExchangeRate
		if err := d.DataTo(&r); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse exchange rate", err)
		}
		rates = append(rates, &r)
	}
	return rates, nil
}
