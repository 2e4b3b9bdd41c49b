package catalog

import (
	"errors"
	"testing"
)

func TestParseTag_Valid(t *testing.T) {
	tests := []struct {
		value    string
		wantName string
	}{
		{"forcefields", "ForceFields"},
		{"assigners", "Assigners"},
		{"gromacs", "Gromacs"},
		{"strategy", "Strategy"},
		{"tactic", "Tactic"},
		{"util", "Util"},
		{"simulators", "Simulators"},
		{"mmschema", "MMSchema"},
		{"translators", "Translators"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			tag, err := ParseTag(tt.value)
			if err != nil {
				t.Fatalf("ParseTag(%q) failed: %v", tt.value, err)
			}

			if tag.Name() != tt.wantName {
				t.Errorf("Expected name %q, got %q", tt.wantName, tag.Name())
			}
		})
	}
}

func TestParseTag_Unknown(t *testing.T) {
	tests := []string{"", "Util", "FORCEFIELDS", "widgets", "util "}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			_, err := ParseTag(value)
			if !errors.Is(err, ErrUnknownTag) {
				t.Errorf("Expected ErrUnknownTag for %q, got %v", value, err)
			}
		})
	}
}

func TestAllTags_CoversVocabulary(t *testing.T) {
	all := AllTags()
	if len(all) != 9 {
		t.Fatalf("Expected 9 tags in vocabulary, got %d", len(all))
	}

	for _, tag := range all {
		if !tag.Valid() {
			t.Errorf("Tag %q from AllTags is not valid", tag)
		}

		if tag.Name() == "" {
			t.Errorf("Tag %q has no symbolic name", tag)
		}
	}
}
