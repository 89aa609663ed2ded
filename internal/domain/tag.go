package domain

// TagType restricts which transaction types a tag may be attached to.
type TagType string

const (
	TagExpense TagType = "expense"
	TagIncome  TagType = "income"
	TagBoth    TagType = "both"
)

// Tag is a category label. SubTags is a flat, ordered list of second-level
// labels; a transaction may pick at most one of them per tag.
type Tag struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Type    TagType  `json:"type"`
	SubTags []string `json:"subTags"`
}

// AppliesTo reports whether the tag may be offered for the given
// transaction type.
func (g Tag) AppliesTo(t TransactionType) bool {
	if g.Type == TagBoth {
		return true
	}
	return string(g.Type) == string(t)
}

// HasSubTag reports whether name is one of the tag's sub-tags.
func (g Tag) HasSubTag(name string) bool {
	for _, s := range g.SubTags {
		if s == name {
			return true
		}
	}
	return false
}

// Account is a money account a transaction draws from or pays into.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
