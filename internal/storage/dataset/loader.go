// Package dataset loads the bundled canonical hotel dataset. The engine only
// needs an in-memory sequence of {id, name} records before the index builds;
// transport is this package's concern.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"hotel_resolver/internal/domain"
)

// ids appear as both strings and numbers in dataset exports
type fileRecord struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}

func idString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// LoadFile reads a JSON array of {id, name} records. Records with an empty
// id or name are skipped: the dataset is curated upstream, but a truncated
// row should not poison the index.
func LoadFile(path string) ([]domain.CanonicalRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var raw []fileRecord
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	out := make([]domain.CanonicalRecord, 0, len(raw))
	for _, r := range raw {
		id := strings.TrimSpace(idString(r.ID))
		name := strings.TrimSpace(r.Name)
		if id == "" || name == "" {
			continue
		}
		out = append(out, domain.CanonicalRecord{ID: id, Name: name})
	}
	return out, nil
}
