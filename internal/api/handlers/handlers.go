package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/youqu117/Bookkeeping/internal/api/middleware"
	"github.com/youqu117/Bookkeeping/internal/assistant"
	"github.com/youqu117/Bookkeeping/internal/domain"
	"github.com/youqu117/Bookkeeping/internal/store"
)

// AssistantHandler serves the AI assistant endpoint.
type AssistantHandler struct {
	assistant *assistant.Assistant
	store     store.Store
	apiKey    string
	log       zerolog.Logger
}

// NewAssistantHandler creates an assistant handler. The API key is passed
// through to the assistant on every request; it may be empty.
func NewAssistantHandler(a *assistant.Assistant, s store.Store, apiKey string, log zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{assistant: a, store: s, apiKey: apiKey, log: log}
}

// Process handles POST /api/assistant.
func (h *AssistantHandler) Process(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Input string `json:"input"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Input == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Input is required")
		return
	}

	tags, err := h.store.ListTags(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list tags")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to load context")
		return
	}
	accounts, err := h.store.ListAccounts(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list accounts")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to load context")
		return
	}
	recent, err := h.store.RecentTransactions(ctx, 10)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list recent transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to load context")
		return
	}

	resp := h.assistant.Process(ctx, h.apiKey, req.Input, assistant.Context{
		Tags:     tags,
		Accounts: accounts,
		Recent:   recent,
	})

	middleware.WriteJSON(w, http.StatusOK, resp)
}

// TransactionsHandler serves transaction endpoints.
type TransactionsHandler struct {
	store store.Store
	log   zerolog.Logger
}

// NewTransactionsHandler creates a transactions handler.
func NewTransactionsHandler(s store.Store, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{store: s, log: log}
}

// List handles GET /api/transactions.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.store.ListTransactions(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// Create handles POST /api/transactions. This is the save target the editor
// emits into: a new transaction gets a generated ID and timestamp, a payload
// carrying an existing ID replaces that record.
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var tx domain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	if err := tx.Validate(); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveTransaction(r.Context(), tx); err != nil {
		h.log.Error().Err(err).Str("transaction_id", tx.ID).Msg("Failed to save transaction")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, tx)
}

// TagsHandler serves tag endpoints.
type TagsHandler struct {
	store store.Store
	log   zerolog.Logger
}

// NewTagsHandler creates a tags handler.
func NewTagsHandler(s store.Store, log zerolog.Logger) *TagsHandler {
	return &TagsHandler{store: s, log: log}
}

// List handles GET /api/tags.
func (h *TagsHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.store.ListTags(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list tags")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list tags")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tags":  tags,
		"count": len(tags),
	})
}

// Create handles POST /api/tags.
func (h *TagsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var tag domain.Tag
	if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if tag.Name == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Tag name is required")
		return
	}
	switch tag.Type {
	case domain.TagExpense, domain.TagIncome, domain.TagBoth:
	default:
		middleware.WriteError(w, http.StatusBadRequest, "Tag type must be expense, income, or both")
		return
	}
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}

	if err := h.store.SaveTag(r.Context(), tag); err != nil {
		h.log.Error().Err(err).Str("tag_id", tag.ID).Msg("Failed to save tag")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to save tag")
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, tag)
}

// Delete handles DELETE /api/tags/{id}.
func (h *TagsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteTag(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.WriteError(w, http.StatusNotFound, "Tag not found")
			return
		}
		h.log.Error().Err(err).Str("tag_id", id).Msg("Failed to delete tag")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to delete tag")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AccountsHandler serves account endpoints.
type AccountsHandler struct {
	store store.Store
	log   zerolog.Logger
}

// NewAccountsHandler creates an accounts handler.
func NewAccountsHandler(s store.Store, log zerolog.Logger) *AccountsHandler {
	return &AccountsHandler{store: s, log: log}
}

// List handles GET /api/accounts.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list accounts")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list accounts")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
		"count":    len(accounts),
	})
}
