package models

import "time"

// Entry status values as stored in Firestore.
const (
	StatusPending = "pending"
	StatusCleared = "cleared"
	StatusVoid    = "void"
)

// SplitAllocation is one sub-allocation of a split ledger entry. It carries
// its own category and amount; everything else is inherited from the parent.
type SplitAllocation struct {
	CategoryID string  `firestore:"categoryId" json:"categoryId,omitempty"`
	Amount     float64 `firestore:"amount" json:"amount"`
	Memo       string  `firestore:"memo" json:"memo,omitempty"`
}

// LedgerEntry is a single ledger row. Amounts are signed: negative is an
// outflow. When IsSplit is set the Splits list holds the allocations and
// downstream aggregation never reads the parent amount or category directly.
type LedgerEntry struct {
	EntryID     string            `firestore:"entryId" json:"entryId"`
	AccountID   string            `firestore:"accountId" json:"accountId"`
	Date        string            `firestore:"date" json:"date"` // YYYY-MM-DD
	Amount      float64           `firestore:"amount" json:"amount"`
	Currency    string            `firestore:"currency" json:"currency"`
	CategoryID  string            `firestore:"categoryId" json:"categoryId,omitempty"`
	PayeeID     string            `firestore:"payeeId" json:"payeeId,omitempty"`
	PayeeName   string            `firestore:"payeeName" json:"payeeName,omitempty"`
	Description string            `firestore:"description" json:"description,omitempty"`
	IsTransfer  bool              `firestore:"isTransfer" json:"isTransfer"`
	IsSplit     bool              `firestore:"isSplit" json:"isSplit"`
	Status      string            `firestore:"status" json:"status"`
	Splits      []SplitAllocation `firestore:"splits" json:"splits,omitempty"`
	CreatedAt   time.Time         `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `firestore:"updatedAt" json:"updatedAt"`
}
