// Package inmemory is a mutex-guarded, copy-on-read implementation of the
// store contracts. Data is lost on restart; it stands in for the host
// application's persistence layer in the API server, the CLI, and tests.
package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/youqu117/Bookkeeping/internal/domain"
	"github.com/youqu117/Bookkeeping/internal/store"
)

// Store keeps transactions, tags, and accounts in memory. Safe for
// concurrent use.
type Store struct {
	mu           sync.RWMutex
	transactions map[string]domain.Transaction
	tags         []domain.Tag
	accounts     []domain.Account
}

// New creates an empty store.
func New() *Store {
	return &Store{
		transactions: make(map[string]domain.Transaction),
	}
}

// SaveTransaction implements store.TransactionStore.
func (s *Store) SaveTransaction(ctx context.Context, tx domain.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("SaveTransaction: transaction ID is required")
	}
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("SaveTransaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[tx.ID] = copyTransaction(tx)
	return nil
}

// GetTransaction implements store.TransactionStore.
func (s *Store) GetTransaction(ctx context.Context, id string) (domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[id]
	if !ok {
		return domain.Transaction{}, fmt.Errorf("GetTransaction %s: %w", id, store.ErrNotFound)
	}
	return copyTransaction(tx), nil
}

// ListTransactions implements store.TransactionStore.
func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		result = append(result, copyTransaction(tx))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// RecentTransactions implements store.TransactionStore.
func (s *Store) RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	all, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// SaveTag implements store.TagStore. Existing tags are updated in place so
// display order is preserved.
func (s *Store) SaveTag(ctx context.Context, tag domain.Tag) error {
	if tag.ID == "" {
		return fmt.Errorf("SaveTag: tag ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.tags {
		if g.ID == tag.ID {
			s.tags[i] = copyTag(tag)
			return nil
		}
	}
	s.tags = append(s.tags, copyTag(tag))
	return nil
}

// ListTags implements store.TagStore.
func (s *Store) ListTags(ctx context.Context) ([]domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Tag, 0, len(s.tags))
	for _, g := range s.tags {
		result = append(result, copyTag(g))
	}
	return result, nil
}

// DeleteTag implements store.TagStore.
func (s *Store) DeleteTag(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.tags {
		if g.ID == id {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("DeleteTag %s: %w", id, store.ErrNotFound)
}

// SaveAccount implements store.AccountStore.
func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	if account.ID == "" {
		return fmt.Errorf("SaveAccount: account ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.accounts {
		if a.ID == account.ID {
			s.accounts[i] = account
			return nil
		}
	}
	s.accounts = append(s.accounts, account)
	return nil
}

// ListAccounts implements store.AccountStore.
func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Account, len(s.accounts))
	copy(result, s.accounts)
	return result, nil
}

func copyTransaction(tx domain.Transaction) domain.Transaction {
	out := tx
	out.Tags = append([]string(nil), tx.Tags...)
	out.Images = append([]string(nil), tx.Images...)
	if tx.SubTags != nil {
		out.SubTags = make(map[string]string, len(tx.SubTags))
		for k, v := range tx.SubTags {
			out.SubTags[k] = v
		}
	}
	return out
}

func copyTag(g domain.Tag) domain.Tag {
	out := g
	out.SubTags = append([]string(nil), g.SubTags...)
	return out
}
