package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Tags is a set of labels stored as a JSON array column.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported scan type %T", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}

// NewTags copies tags, trimming blanks and dropping empties and duplicates.
// The result is never nil.
func NewTags(tags []string) Tags {
	seen := make(map[string]struct{}, len(tags))
	out := make(Tags, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ParseTags splits a comma separated list with the same rules as NewTags,
// returning nil when nothing is left.
func ParseTags(raw string) Tags {
	out := NewTags(strings.Split(raw, ","))
	if len(out) == 0 {
		return nil
	}
	return out
}
