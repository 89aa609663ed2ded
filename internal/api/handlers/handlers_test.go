package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youqu117/Bookkeeping/internal/api/handlers"
	"github.com/youqu117/Bookkeeping/internal/assistant"
	"github.com/youqu117/Bookkeeping/internal/domain"
	"github.com/youqu117/Bookkeeping/internal/logger"
	"github.com/youqu117/Bookkeeping/internal/store/inmemory"
)

type stubGenerator struct {
	reply string
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, apiKey, model, prompt string) (string, error) {
	g.calls++
	return g.reply, nil
}

func seededStore(t *testing.T) *inmemory.Store {
	t.Helper()
	s := inmemory.New()
	ctx := context.Background()

	require.NoError(t, s.SaveAccount(ctx, domain.Account{ID: "a1", Name: "Cash"}))
	require.NoError(t, s.SaveTag(ctx, domain.Tag{ID: "t1", Name: "Food", Type: domain.TagExpense, SubTags: []string{"Lunch"}}))
	return s
}

func TestAssistantNoKey(t *testing.T) {
	gen := &stubGenerator{}
	a := assistant.New(gen, "", logger.NewWithWriter(&bytes.Buffer{}))
	h := handlers.NewAssistantHandler(a, seededStore(t), "", logger.NewWithWriter(&bytes.Buffer{}))

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", bytes.NewBufferString(`{"input": "Lunch 20"}`))
	rec := httptest.NewRecorder()
	h.Process(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ActionChat, resp.Action)
	assert.Zero(t, gen.calls, "no model call may happen without an API key")
}

func TestAssistantCreate(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"action": "create",
		"data": {"amount": 20, "type": "expense", "accountId": "a1", "tags": ["t1"], "note": "Lunch"}
	}`}
	a := assistant.New(gen, "", logger.NewWithWriter(&bytes.Buffer{}))
	h := handlers.NewAssistantHandler(a, seededStore(t), "test-key", logger.NewWithWriter(&bytes.Buffer{}))

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", bytes.NewBufferString(`{"input": "Lunch 20"}`))
	rec := httptest.NewRecorder()
	h.Process(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, domain.ActionCreate, resp.Action)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 20.0, resp.Data.Amount)
	assert.Equal(t, "a1", resp.Data.AccountID)
	assert.Equal(t, []string{"t1"}, resp.Data.Tags)
	assert.Equal(t, 1, gen.calls)
}

func TestAssistantRejectsEmptyInput(t *testing.T) {
	a := assistant.New(&stubGenerator{}, "", logger.NewWithWriter(&bytes.Buffer{}))
	h := handlers.NewAssistantHandler(a, seededStore(t), "k", logger.NewWithWriter(&bytes.Buffer{}))

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	h.Process(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionsCreateAndList(t *testing.T) {
	s := seededStore(t)
	log := logger.NewWithWriter(&bytes.Buffer{})
	h := handlers.NewTransactionsHandler(s, log)

	body := `{"amount": -12.5, "type": "expense", "accountId": "a1", "tags": ["t1"], "subTags": {"t1": "Lunch"}, "confirmed": true}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID, "server assigns an ID to new transactions")
	assert.False(t, created.CreatedAt.IsZero())

	req = httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec = httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var listResp struct {
		Transactions []domain.Transaction `json:"transactions"`
		Count        int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Equal(t, 1, listResp.Count)
	assert.Equal(t, created.ID, listResp.Transactions[0].ID)
}

func TestTransactionsCreateRejectsSameAccountTransfer(t *testing.T) {
	h := handlers.NewTransactionsHandler(seededStore(t), logger.NewWithWriter(&bytes.Buffer{}))

	body := `{"amount": 100, "type": "transfer", "accountId": "a1", "toAccountId": "a1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransactionsEditKeepsTimestamp(t *testing.T) {
	s := seededStore(t)
	h := handlers.NewTransactionsHandler(s, logger.NewWithWriter(&bytes.Buffer{}))

	createdAt := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveTransaction(context.Background(), domain.Transaction{
		ID: "tx1", Amount: 5, Type: domain.TypeIncome, AccountID: "a1", CreatedAt: createdAt,
	}))

	body := `{"id": "tx1", "amount": 7, "type": "income", "accountId": "a1", "createdAt": "2026-01-01T08:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	got, err := s.GetTransaction(context.Background(), "tx1")
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Amount)
	assert.True(t, got.CreatedAt.Equal(createdAt))
}

func TestTagsCreateAndDelete(t *testing.T) {
	s := seededStore(t)
	h := handlers.NewTagsHandler(s, logger.NewWithWriter(&bytes.Buffer{}))

	body := `{"name": "Pets", "color": "purple", "type": "expense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tags", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	// Delete goes through the router so chi can extract the URL param.
	r := chi.NewRouter()
	r.Delete("/api/tags/{id}", h.Delete)

	req = httptest.NewRequest(http.MethodDelete, "/api/tags/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/tags/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTagsCreateValidation(t *testing.T) {
	h := handlers.NewTagsHandler(seededStore(t), logger.NewWithWriter(&bytes.Buffer{}))

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"type": "expense"}`},
		{"bad type", `{"name": "Pets", "type": "weird"}`},
		{"bad json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/tags", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAccountsList(t *testing.T) {
	h := handlers.NewAccountsHandler(seededStore(t), logger.NewWithWriter(&bytes.Buffer{}))

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Accounts []domain.Account `json:"accounts"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Cash", resp.Accounts[0].Name)
}
