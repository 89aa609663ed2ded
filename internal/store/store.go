// Package store defines the repository contracts the HTTP layer and the
// assistant context are built on. Implementations live in subpackages;
// durable persistence is owned by the host application.
package store

import (
	"context"
	"errors"

	"github.com/youqu117/Bookkeeping/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// TransactionStore holds bookkeeping records.
type TransactionStore interface {
	// SaveTransaction inserts the transaction, or replaces it when a
	// record with the same ID exists.
	SaveTransaction(ctx context.Context, tx domain.Transaction) error

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, id string) (domain.Transaction, error)

	// ListTransactions returns all transactions, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// RecentTransactions returns at most limit transactions, newest first.
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}

// TagStore holds the tag collection in display order.
type TagStore interface {
	SaveTag(ctx context.Context, tag domain.Tag) error
	ListTags(ctx context.Context) ([]domain.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

// AccountStore holds the account collection in display order.
type AccountStore interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// Store is the combined contract a full host application provides.
type Store interface {
	TransactionStore
	TagStore
	AccountStore
}
