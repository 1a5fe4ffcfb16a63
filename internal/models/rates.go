package models

import "time"

// ExchangeRate is one directed currency pair from the latest rate snapshot.
type ExchangeRate struct {
	FromCurrency string    `firestore:"fromCurrency" json:"fromCurrency"`
	ToCurrency   string    `firestore:"toCurrency" json:"toCurrency"`
	Rate         float64   `firestore:"rate" json:"rate"`
	FetchedAt    time.Time `firestore:"fetchedAt" json:"fetchedAt"`
}
