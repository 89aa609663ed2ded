package domain

import (
	"time"
)

// TransactionType classifies a transaction as money out, money in, or a
// movement between two of the user's own accounts.
type TransactionType string

const (
	TypeExpense  TransactionType = "expense"
	TypeIncome   TransactionType = "income"
	TypeTransfer TransactionType = "transfer"
)

// Valid reports whether t is one of the three known types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeExpense, TypeIncome, TypeTransfer:
		return true
	}
	return false
}

// MaxImages caps how many image attachments a single transaction may carry.
const MaxImages = 4

// Transaction is one bookkeeping record. Tags holds the selected tag IDs in
// selection order; SubTags maps a tag ID to the single sub-tag chosen under
// it (at most one per tag).
type Transaction struct {
	ID          string            `json:"id"`
	Amount      float64           `json:"amount"`
	Type        TransactionType   `json:"type"`
	AccountID   string            `json:"accountId"`
	ToAccountID string            `json:"toAccountId,omitempty"`
	Tags        []string          `json:"tags"`
	SubTags     map[string]string `json:"subTags,omitempty"`
	Note        string            `json:"note,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Confirmed   bool              `json:"confirmed"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Validate checks the structural invariants of a finalized transaction.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.AccountID == "" {
		return ErrMissingAccount
	}
	if t.Type == TypeTransfer {
		if t.ToAccountID == "" {
			return ErrMissingAccount
		}
		if t.ToAccountID == t.AccountID {
			return ErrSameAccountTransfer
		}
	}
	if len(t.Images) > MaxImages {
		return ErrTooManyImages
	}
	return nil
}
