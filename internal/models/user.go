package models

// UserPreferences is the slice of the user document the report engine reads.
// An unset DefaultCurrency falls back to USD at resolution time.
type UserPreferences struct {
	DefaultCurrency string `firestore:"defaultCurrency" json:"defaultCurrency,omitempty"`
}
