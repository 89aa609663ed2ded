package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/youqu117/Bookkeeping/internal/domain"
)

// decodeResponse parses the model's raw text into a Response. The reply is
// treated as untrusted: the action tag and every field are checked per
// scenario, and any mismatch is an error rather than a partial result.
func decodeResponse(raw string) (domain.Response, error) {
	clean := cleanModelJSON(raw)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(clean), &obj); err != nil {
		return domain.Response{}, fmt.Errorf("decodeResponse: unmarshal JSON: %w", err)
	}

	action, err := getStringField(obj, "action", true)
	if err != nil {
		return domain.Response{}, fmt.Errorf("decodeResponse: %w", err)
	}

	switch domain.Action(action) {
	case domain.ActionCreate:
		data, err := decodeCreateData(obj)
		if err != nil {
			return domain.Response{}, fmt.Errorf("decodeResponse: %w", err)
		}
		return domain.Response{Action: domain.ActionCreate, Data: data}, nil

	case domain.ActionAnalysis, domain.ActionChat:
		text, err := getStringField(obj, "text", true)
		if err != nil {
			return domain.Response{}, fmt.Errorf("decodeResponse: %w", err)
		}
		return domain.Response{Action: domain.Action(action), Text: text}, nil

	default:
		return domain.Response{}, fmt.Errorf("decodeResponse: unknown action %q", action)
	}
}

func decodeCreateData(obj map[string]interface{}) (*domain.CreateData, error) {
	dataAny, ok := obj["data"]
	if !ok {
		return nil, fmt.Errorf("decodeCreateData: missing 'data' object")
	}
	dataObj, ok := dataAny.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("decodeCreateData: 'data' is %T, want object", dataAny)
	}

	amount, err := getFloat64Field(dataObj, "amount", true)
	if err != nil {
		return nil, err
	}
	typeStr, err := getStringField(dataObj, "type", true)
	if err != nil {
		return nil, err
	}
	txType := domain.TransactionType(typeStr)
	if !txType.Valid() {
		return nil, fmt.Errorf("field \"type\" has unknown value %q", typeStr)
	}
	accountID, err := getStringField(dataObj, "accountId", true)
	if err != nil {
		return nil, err
	}
	toAccountID, err := getOptionalStringField(dataObj, "toAccountId")
	if err != nil {
		return nil, err
	}
	tags, err := getStringSliceField(dataObj, "tags")
	if err != nil {
		return nil, err
	}
	subTags, err := getStringMapField(dataObj, "subTags")
	if err != nil {
		return nil, err
	}
	note, err := getOptionalStringField(dataObj, "note")
	if err != nil {
		return nil, err
	}

	data := &domain.CreateData{
		Amount:    amount,
		Type:      txType,
		AccountID: accountID,
		Tags:      tags,
		SubTags:   subTags,
	}
	if toAccountID != nil {
		data.ToAccountID = *toAccountID
	}
	if note != nil {
		data.Note = *note
	}
	return data, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignored the output rules, keeping only the first top-level JSON object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)

		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// If there's still junk around the JSON object, keep only from the
	// first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

func getStringField(m map[string]interface{}, key string, required bool) (string, error) {
	v, ok := m[key]
	if !ok {
		if required {
			return "", fmt.Errorf("missing required field %q", key)
		}
		return "", nil
	}
	switch val := v.(type) {
	case string:
		if required && strings.TrimSpace(val) == "" {
			return "", fmt.Errorf("required field %q is empty", key)
		}
		return val, nil
	default:
		return "", fmt.Errorf("field %q has type %T, want string", key, v)
	}
}

func getOptionalStringField(m map[string]interface{}, key string) (*string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil, nil
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("field %q has type %T, want string or null", key, v)
	}
}

func getFloat64Field(m map[string]interface{}, key string, required bool) (float64, error) {
	v, ok := m[key]
	if !ok {
		if required {
			return 0, fmt.Errorf("missing required field %q", key)
		}
		return 0, nil
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	default:
		return 0, fmt.Errorf("field %q has type %T, want number", key, v)
	}
}

func getStringSliceField(m map[string]interface{}, key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	slice, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %q has type %T, want array", key, v)
	}
	result := make([]string, 0, len(slice))
	for i, item := range slice {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q element %d has type %T, want string", key, i, item)
		}
		result = append(result, s)
	}
	return result, nil
}

func getStringMapField(m map[string]interface{}, key string) (map[string]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("field %q has type %T, want object", key, v)
	}
	if len(obj) == 0 {
		return nil, nil
	}
	result := make(map[string]string, len(obj))
	for k, item := range obj {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q entry %q has type %T, want string", key, k, item)
		}
		result[k] = s
	}
	return result, nil
}
