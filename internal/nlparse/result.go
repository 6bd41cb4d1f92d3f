package nlparse

import (
	"fmt"
	"strings"
)

// Result is the model's structured guess for one line of free text. Pointer
// and empty-string fields distinguish "no opinion" from a real value.
type Result struct {
	Intent                 string
	Amount                 *float64
	PeopleNames            []string
	GroupName              string
	SourceAccountName      string
	DestinationAccountName string
	OccurredAt             string // YYYY-MM-DD
	Note                   string
	SplitBill              *bool
	CategoryName           string
	ShopName               string
	CashbackSharePercent   *float64
	CashbackShareFixed     *float64
	CashbackMode           string
}

// resultFromRaw converts the unmarshalled model JSON into a Result.
func resultFromRaw(obj map[string]interface{}) (*Result, error) {
	r := &Result{}
	var err error

	if r.Intent, err = getStringField(obj, "intent"); err != nil {
		return nil, err
	}
	if r.Amount, err = getFloat64Field(obj, "amount"); err != nil {
		return nil, err
	}
	if r.PeopleNames, err = getStringSliceField(obj, "people"); err != nil {
		return nil, err
	}
	if r.GroupName, err = getStringField(obj, "group"); err != nil {
		return nil, err
	}
	if r.SourceAccountName, err = getStringField(obj, "source_account"); err != nil {
		return nil, err
	}
	if r.DestinationAccountName, err = getStringField(obj, "destination_account"); err != nil {
		return nil, err
	}
	if r.OccurredAt, err = getStringField(obj, "occurred_at"); err != nil {
		return nil, err
	}
	if r.Note, err = getStringField(obj, "note"); err != nil {
		return nil, err
	}
	if r.SplitBill, err = getBoolField(obj, "split_bill"); err != nil {
		return nil, err
	}
	if r.CategoryName, err = getStringField(obj, "category"); err != nil {
		return nil, err
	}
	if r.ShopName, err = getStringField(obj, "shop"); err != nil {
		return nil, err
	}
	if r.CashbackSharePercent, err = getFloat64Field(obj, "cashback_share_percent"); err != nil {
		return nil, err
	}
	if r.CashbackShareFixed, err = getFloat64Field(obj, "cashback_share_fixed"); err != nil {
		return nil, err
	}
	if r.CashbackMode, err = getStringField(obj, "cashback_mode"); err != nil {
		return nil, err
	}

	return r, nil
}

func getStringField(m map[string]interface{}, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is %T, want string", key, v)
	}
	return strings.TrimSpace(s), nil
}

func getFloat64Field(m map[string]interface{}, key string) (*float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("field %q is %T, want number", key, v)
	}
	return &f, nil
}

func getBoolField(m map[string]interface{}, key string) (*bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("field %q is %T, want bool", key, v)
	}
	return &b, nil
}

func getStringSliceField(m map[string]interface{}, key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %q is %T, want []string", key, v)
	}
	out := make([]string, 0, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q element %d is %T, want string", key, i, item)
		}
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// cleanModelJSON strips Markdown fences and surrounding noise if the model
// ignored the strict-JSON instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
