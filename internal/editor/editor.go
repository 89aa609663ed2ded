// Package editor implements the transaction entry form as a headless
// controller: an explicit draft struct plus one update method per user
// action, so the selection rules can be tested without any rendering
// environment.
package editor

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/youqu117/Bookkeeping/internal/domain"
)

// Callbacks is the contract with the host application. The editor never
// persists anything itself; all cross-component effects go through these.
type Callbacks struct {
	OnSave      func(tx domain.Transaction, existingID string)
	OnAddTag    func(tag domain.Tag)
	OnDeleteTag func(tagID string)
	OnClose     func()
}

// Draft is the in-memory, not-yet-persisted transaction state. AmountText
// holds the raw field text; it is parsed only at submission.
type Draft struct {
	AmountText  string
	Type        domain.TransactionType
	AccountID   string
	ToAccountID string
	TagIDs      []string
	SubTags     map[string]string
	Note        string
	Images      []string
	Confirmed   bool
}

// Config carries everything the editor needs at construction time.
type Config struct {
	Tags     []domain.Tag
	Accounts []domain.Account

	// Existing switches the editor into edit mode and populates every
	// field from the given transaction.
	Existing *domain.Transaction

	// DefaultTagID pre-selects a tag when creating a new transaction.
	// Ignored in edit mode.
	DefaultTagID string

	Callbacks Callbacks
	Logger    zerolog.Logger
}

// Editor holds the draft and the interaction state around it. expandedTagID
// is the single optional identifier for the open sub-tag panel; holding it
// as one field makes the one-panel-open rule structural.
type Editor struct {
	mu    sync.Mutex
	draft Draft

	tags     []domain.Tag
	accounts []domain.Account

	expandedTagID string
	newTag        *newTagDraft

	editingID string
	createdAt time.Time

	callbacks Callbacks
	log       zerolog.Logger
}

// New constructs an editor. In edit mode all fields come from the existing
// transaction and the sub-tag panel auto-expands for the first selected tag
// that has sub-tags. Otherwise the draft starts from safe defaults: expense
// type, first available account, confirmed.
func New(cfg Config) *Editor {
	e := &Editor{
		tags:      append([]domain.Tag(nil), cfg.Tags...),
		accounts:  append([]domain.Account(nil), cfg.Accounts...),
		callbacks: cfg.Callbacks,
		log:       cfg.Logger,
	}

	if cfg.Existing != nil {
		tx := cfg.Existing
		e.editingID = tx.ID
		e.createdAt = tx.CreatedAt
		e.draft = Draft{
			AmountText:  formatAmount(tx.Amount),
			Type:        tx.Type,
			AccountID:   tx.AccountID,
			ToAccountID: tx.ToAccountID,
			TagIDs:      append([]string(nil), tx.Tags...),
			SubTags:     copySubTags(tx.SubTags),
			Note:        tx.Note,
			Images:      append([]string(nil), tx.Images...),
			Confirmed:   tx.Confirmed,
		}
		for _, id := range e.draft.TagIDs {
			if g, ok := e.findTag(id); ok && len(g.SubTags) > 0 {
				e.expandedTagID = id
				break
			}
		}
		return e
	}

	e.draft = Draft{
		Type:      domain.TypeExpense,
		SubTags:   make(map[string]string),
		Confirmed: true,
	}
	if len(e.accounts) > 0 {
		e.draft.AccountID = e.accounts[0].ID
	}

	if cfg.DefaultTagID != "" {
		if g, ok := e.findTag(cfg.DefaultTagID); ok {
			if g.Type != domain.TagBoth {
				e.draft.Type = domain.TransactionType(g.Type)
			}
			e.draft.TagIDs = append(e.draft.TagIDs, g.ID)
			if len(g.SubTags) > 0 {
				e.expandedTagID = g.ID
			}
		}
	}

	return e
}

// Draft returns a copy of the current draft state.
func (e *Editor) Draft() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := e.draft
	d.TagIDs = append([]string(nil), e.draft.TagIDs...)
	d.SubTags = copySubTags(e.draft.SubTags)
	d.Images = append([]string(nil), e.draft.Images...)
	return d
}

// Editing reports whether the editor was opened on an existing transaction.
func (e *Editor) Editing() bool {
	return e.editingID != ""
}

// SetAmount replaces the raw amount field text.
func (e *Editor) SetAmount(text string) {
	e.draft.AmountText = text
}

// SetType switches the transaction type. Tag selection is left untouched;
// tags not matching the new type are simply no longer offered.
func (e *Editor) SetType(t domain.TransactionType) {
	if !t.Valid() {
		return
	}
	e.draft.Type = t
}

// SetNote replaces the note text.
func (e *Editor) SetNote(note string) {
	e.draft.Note = note
}

// SetConfirmed sets the confirmation flag.
func (e *Editor) SetConfirmed(confirmed bool) {
	e.draft.Confirmed = confirmed
}

// SetAccount selects the source account. If the destination currently equals
// the new source it is cleared, so the two can never coincide.
func (e *Editor) SetAccount(id string) {
	e.draft.AccountID = id
	if e.draft.ToAccountID == id {
		e.draft.ToAccountID = ""
	}
}

// SetDestination selects the transfer destination account. Choosing the
// current source account is rejected.
func (e *Editor) SetDestination(id string) error {
	if id == e.draft.AccountID {
		return domain.ErrSameAccountTransfer
	}
	e.draft.ToAccountID = id
	return nil
}

// DestinationOptions lists the accounts selectable as transfer destination:
// every account except the current source.
func (e *Editor) DestinationOptions() []domain.Account {
	opts := make([]domain.Account, 0, len(e.accounts))
	for _, a := range e.accounts {
		if a.ID == e.draft.AccountID {
			continue
		}
		opts = append(opts, a)
	}
	return opts
}

// CanSubmit reports whether submission is enabled: the amount field must be
// non-empty and parse as a number. All other fields have safe defaults.
func (e *Editor) CanSubmit() bool {
	text := strings.TrimSpace(e.draft.AmountText)
	if text == "" {
		return false
	}
	_, err := strconv.ParseFloat(text, 64)
	return err == nil
}

// Submit finalizes the draft and hands it to the host via OnSave, then
// closes the form. It is a no-op while CanSubmit is false.
func (e *Editor) Submit() error {
	if !e.CanSubmit() {
		return ErrEmptyAmount
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(e.draft.AmountText), 64)
	if err != nil {
		return ErrEmptyAmount
	}

	createdAt := e.createdAt
	if e.editingID == "" {
		createdAt = time.Now()
	}

	e.mu.Lock()
	tx := domain.Transaction{
		ID:          e.editingID,
		Amount:      amount,
		Type:        e.draft.Type,
		AccountID:   e.draft.AccountID,
		ToAccountID: e.draft.ToAccountID,
		Tags:        append([]string(nil), e.draft.TagIDs...),
		SubTags:     copySubTags(e.draft.SubTags),
		Note:        e.draft.Note,
		Images:      append([]string(nil), e.draft.Images...),
		Confirmed:   e.draft.Confirmed,
		CreatedAt:   createdAt,
	}
	e.mu.Unlock()

	if tx.Type != domain.TypeTransfer {
		tx.ToAccountID = ""
	}
	if err := tx.Validate(); err != nil {
		return err
	}

	if e.callbacks.OnSave != nil {
		e.callbacks.OnSave(tx, e.editingID)
	}
	if e.callbacks.OnClose != nil {
		e.callbacks.OnClose()
	}
	return nil
}

// Close abandons the draft.
func (e *Editor) Close() {
	if e.callbacks.OnClose != nil {
		e.callbacks.OnClose()
	}
}

func (e *Editor) findTag(id string) (domain.Tag, bool) {
	for _, g := range e.tags {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Tag{}, false
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func copySubTags(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
