package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownTag is returned when a tag value is outside the vocabulary.
var ErrUnknownTag = errors.New("unknown tag")

// Tag is a category label from the fixed component vocabulary.
type Tag string

// The complete tag vocabulary. Values are what appears in data.json,
// symbolic names are what gets rendered into front matter.
const (
	TagForceFields Tag = "forcefields"
	TagAssigners   Tag = "assigners"
	TagGromacs     Tag = "gromacs"
	TagStrategy    Tag = "strategy"
	TagTactic      Tag = "tactic"
	TagUtil        Tag = "util"
	TagSimulators  Tag = "simulators"
	TagMMSchema    Tag = "mmschema"
	TagTranslators Tag = "translators"
)

var tagNames = map[Tag]string{
	TagForceFields: "ForceFields",
	TagAssigners:   "Assigners",
	TagGromacs:     "Gromacs",
	TagStrategy:    "Strategy",
	TagTactic:      "Tactic",
	TagUtil:        "Util",
	TagSimulators:  "Simulators",
	TagMMSchema:    "MMSchema",
	TagTranslators: "Translators",
}

// Name returns the symbolic name used in rendered output.
func (t Tag) Name() string {
	return tagNames[t]
}

// Valid reports whether the tag belongs to the vocabulary.
func (t Tag) Valid() bool {
	_, ok := tagNames[t]

	return ok
}

// ParseTag converts a raw string into a vocabulary tag.
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, s)
	}

	return t, nil
}

// AllTags returns the vocabulary in rendering order.
func AllTags() []Tag {
	return []Tag{
		TagForceFields,
		TagAssigners,
		TagGromacs,
		TagStrategy,
		TagTactic,
		TagUtil,
		TagSimulators,
		TagMMSchema,
		TagTranslators,
	}
}
