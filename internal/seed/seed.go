// Package seed loads initial tags, accounts, and transactions from a JSON
// file into a store. Both the API server and the CLI use it to stand up a
// working dataset without a persistence layer.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/youqu117/Bookkeeping/internal/domain"
	"github.com/youqu117/Bookkeeping/internal/store"
)

// Data is the seed file shape.
type Data struct {
	Tags         []domain.Tag         `json:"tags"`
	Accounts     []domain.Account     `json:"accounts"`
	Transactions []domain.Transaction `json:"transactions"`
}

// Load reads and parses a seed file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: read seed file %q: %w", path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("Load: parse seed file %q: %w", path, err)
	}

	return &data, nil
}

// Apply writes the seed data into the store.
func (d *Data) Apply(ctx context.Context, s store.Store) error {
	for _, a := range d.Accounts {
		if err := s.SaveAccount(ctx, a); err != nil {
			return fmt.Errorf("Apply: account %s: %w", a.ID, err)
		}
	}
	for _, g := range d.Tags {
		if err := s.SaveTag(ctx, g); err != nil {
			return fmt.Errorf("Apply: tag %s: %w", g.ID, err)
		}
	}
	for _, tx := range d.Transactions {
		if err := s.SaveTransaction(ctx, tx); err != nil {
			return fmt.Errorf("Apply: transaction %s: %w", tx.ID, err)
		}
	}
	return nil
}
