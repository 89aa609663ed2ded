package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/youqu117/Bookkeeping/internal/store/inmemory"
)

func TestLoadAndApply(t *testing.T) {
	content := `{
		"accounts": [{"id": "a1", "name": "Cash"}],
		"tags": [{"id": "t1", "name": "Food", "color": "red", "type": "expense", "subTags": ["Lunch"]}],
		"transactions": [{
			"id": "tx1", "amount": -12, "type": "expense", "accountId": "a1",
			"tags": ["t1"], "confirmed": true, "createdAt": "2026-02-01T12:00:00Z"
		}]
	}`

	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	data, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s := inmemory.New()
	ctx := context.Background()
	if err := data.Apply(ctx, s); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	tags, _ := s.ListTags(ctx)
	if len(tags) != 1 || tags[0].SubTags[0] != "Lunch" {
		t.Errorf("tags = %+v", tags)
	}
	accounts, _ := s.ListAccounts(ctx)
	if len(accounts) != 1 {
		t.Errorf("accounts = %+v", accounts)
	}
	if _, err := s.GetTransaction(ctx, "tx1"); err != nil {
		t.Errorf("GetTransaction: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("does-not-exist.json"); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
