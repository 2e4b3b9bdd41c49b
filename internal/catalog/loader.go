package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// RawComponent is an unvalidated field mapping straight from data.json.
// Fields stay untyped so the validator can reject unknown keys.
type RawComponent map[string]any

// LoadCatalog reads a JSON catalogue file mapping component title to
// raw field mapping.
func LoadCatalog(path string) (map[string]RawComponent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue file: %w", err)
	}

	var entries map[string]RawComponent
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue JSON: %w", err)
	}

	return entries, nil
}

// SortedTitles returns the catalogue titles in deterministic order.
func SortedTitles(entries map[string]RawComponent) []string {
	titles := make([]string, 0, len(entries))
	for title := range entries {
		titles = append(titles, title)
	}

	sort.Strings(titles)

	return titles
}
