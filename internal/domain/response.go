package domain

// Action is the classified purpose of a free-text assistant input.
type Action string

const (
	// ActionCreate means the input describes a transaction to record.
	ActionCreate Action = "create"
	// ActionAnalysis means the input asks for a summary over recent
	// transactions.
	ActionAnalysis Action = "analysis"
	// ActionChat covers greetings and anything the model could not
	// classify.
	ActionChat Action = "chat"
)

// CreateData is the partial transaction extracted by the model for a
// create intent. Tags carries exactly one best-matching tag ID.
type CreateData struct {
	Amount      float64           `json:"amount"`
	Type        TransactionType   `json:"type"`
	AccountID   string            `json:"accountId"`
	ToAccountID string            `json:"toAccountId,omitempty"`
	Tags        []string          `json:"tags"`
	SubTags     map[string]string `json:"subTags,omitempty"`
	Note        string            `json:"note,omitempty"`
}

// Response is the assistant's decoded reply: a tagged union over Action.
// Data is non-nil only for ActionCreate; Text carries the model's reply for
// ActionAnalysis and ActionChat.
type Response struct {
	Action Action      `json:"action"`
	Data   *CreateData `json:"data,omitempty"`
	Text   string      `json:"text,omitempty"`
}
