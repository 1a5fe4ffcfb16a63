package services

import (
	"context"
	"strings"

	"github.com/dmaskell/ledgerview-backend/internal/models"
	"github.com/dmaskell/ledgerview-backend/pkg/logger"
)

// rateTable normalizes amounts into the report's target currency. Lookup
// order: same currency passes through at rate 1, then a direct rate, then
// the reciprocal of the inverse pair. A nil table converts nothing.
type rateTable struct {
	rates map[string]float64
}

func newRateTable(rates []*models.ExchangeRate) *rateTable {
	t := &rateTable{rates: make(map[string]float64, len(rates))}
	for _, r := range rates {
		t.rates[pairKey(r.FromCurrency, r.ToCurrency)] = r.Rate
	}
	return t
}

func pairKey(from, to string) string {
	return strings.ToUpper(from) + "/" + strings.ToUpper(to)
}

// Convert returns amount expressed in the target currency. When neither a
// direct nor an inverse rate exists the amount passes through unchanged and
// a warning is logged; rejecting the whole report over one stale pair would
// hide every other row.
func (t *rateTable) Convert(ctx context.Context, amount float64, from, to string) float64 {
	if from == "" || strings.EqualFold(from, to) {
		return amount
	}
	if t != nil {
		if rate, ok := t.rates[pairKey(from, to)]; ok && rate != 0 {
			return amount * rate
		}
		if rate, ok := t.rates[pairKey(to, from)]; ok && rate != 0 {
			return amount / rate
		}
	}
	logger.FromContext(ctx).Warn("no exchange rate for pair, passing amount through",
		"from", from, "to", to)
	return amount
}
