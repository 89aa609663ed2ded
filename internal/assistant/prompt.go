package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/youqu117/Bookkeeping/internal/domain"
)

// recentLimit caps how many recent transactions are embedded in the prompt.
const recentLimit = 10

// recentEntry is the trimmed transaction digest sent to the model. Only
// date, amount, type and note are shared.
type recentEntry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
	Note   string  `json:"note"`
}

// buildPrompt assembles the single prompt string: today's date, enumerated
// accounts, enumerated tags with their sub-tags, a JSON digest of recent
// transactions, and the three-scenario classification instructions.
func buildPrompt(input string, appCtx Context, now time.Time) string {
	var b strings.Builder

	b.WriteString("You are a bookkeeping assistant inside a personal finance app.\n")
	b.WriteString("Today's date is " + now.Format("2006-01-02") + ".\n\n")

	b.WriteString("Accounts:\n")
	for _, a := range appCtx.Accounts {
		b.WriteString(fmt.Sprintf("- id: %s, name: %s\n", a.ID, a.Name))
	}

	b.WriteString("\nTags:\n")
	for _, g := range appCtx.Tags {
		b.WriteString(fmt.Sprintf("- id: %s, name: %s, type: %s", g.ID, g.Name, g.Type))
		if len(g.SubTags) > 0 {
			b.WriteString(", sub-tags: " + strings.Join(g.SubTags, ", "))
		} else {
			b.WriteString(", no sub-tags")
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRecent transactions (JSON):\n")
	b.WriteString(recentDigest(appCtx.Recent))
	b.WriteString("\n\n")

	b.WriteString("Classify the user input into EXACTLY ONE of three scenarios and answer\n")
	b.WriteString("with a single JSON object:\n\n")

	b.WriteString("1. \"create\" - the input describes a transaction to record, e.g. \"Lunch 20\".\n")
	b.WriteString("   Return: {\"action\": \"create\", \"data\": {\n")
	b.WriteString("     \"amount\": number,\n")
	b.WriteString("     \"type\": \"expense\" | \"income\" | \"transfer\",\n")
	b.WriteString("     \"accountId\": best matching account id,\n")
	b.WriteString("     \"toAccountId\": destination account id, ONLY when type is \"transfer\",\n")
	b.WriteString("     \"tags\": array with EXACTLY ONE best matching tag id,\n")
	b.WriteString("     \"subTags\": object mapping that tag id to a matched sub-tag name, or {},\n")
	b.WriteString("     \"note\": short note describing the transaction\n")
	b.WriteString("   }}\n")
	b.WriteString("2. \"analysis\" - the input asks about spending habits or totals.\n")
	b.WriteString("   Compute the answer from the recent transactions above.\n")
	b.WriteString("   Return: {\"action\": \"analysis\", \"text\": your summary}\n")
	b.WriteString("3. \"chat\" - greetings or anything unclear.\n")
	b.WriteString("   Return: {\"action\": \"chat\", \"text\": your reply}\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n")
	b.WriteString("- Do NOT wrap the response in code fences.\n")
	b.WriteString("- Do NOT use ```json or any Markdown.\n")
	b.WriteString("- Output must begin with \"{\" and end with \"}\".\n\n")

	b.WriteString("User input: " + input + "\n")

	return b.String()
}

// recentDigest serializes at most recentLimit transactions into a compact
// JSON array of date/amount/type/note.
func recentDigest(recent []domain.Transaction) string {
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	entries := make([]recentEntry, 0, len(recent))
	for _, tx := range recent {
		entries = append(entries, recentEntry{
			Date:   tx.CreatedAt.Format("2006-01-02"),
			Amount: tx.Amount,
			Type:   string(tx.Type),
			Note:   tx.Note,
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		// Only unmarshalable values can fail here; entries never contain any.
		return "[]"
	}
	return string(data)
}
