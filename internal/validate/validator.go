// Package validate converts raw catalogue entries into validated
// components, performing the network and filesystem checks each field
// requires.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catpub/internal/catalog"
	"catpub/internal/fetch"
	"catpub/pkg/fsutil"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrUnknownField    = errors.New("unknown field")
	ErrMissingField    = errors.New("missing required field")
	ErrFieldType       = errors.New("unexpected field type")
	ErrLinkUnreachable = errors.New("link is unreachable")
	ErrImageDownload   = errors.New("could not download image")
	ErrImageNotFound   = errors.New("image file does not exist")
	ErrInvalidDate     = errors.New("date does not match format")
)

// knownFields is the complete set of fields an entry may carry. The
// title lives in the JSON key, so a title field inside the mapping is
// rejected as unknown.
var knownFields = map[string]bool{
	"link":      true,
	"tags":      true,
	"summary":   true,
	"developer": true,
	"date":      true,
	"image":     true,
}

var requiredFields = []string{"link", "tags", "summary", "developer"}

// ValidationError reports which component and field failed validation.
type ValidationError struct {
	Component string
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("component %q: field %q: %v", e.Component, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validator builds validated components from raw catalogue entries.
// Remote images are downloaded into tmpDir as a validation side effect.
type Validator struct {
	fetcher *fetch.Client
	tmpDir  string
	now     func() time.Time
}

// NewValidator creates a validator that downloads remote images into tmpDir.
func NewValidator(fetcher *fetch.Client, tmpDir string) *Validator {
	return &Validator{
		fetcher: fetcher,
		tmpDir:  tmpDir,
		now:     time.Now,
	}
}

// Validate checks every field of the raw entry and returns the
// validated component. The first failing field aborts validation.
func (v *Validator) Validate(title string, raw catalog.RawComponent) (*catalog.Component, error) {
	if title == "" {
		return nil, &ValidationError{Component: title, Field: "title", Err: ErrEmptyTitle}
	}

	for field := range raw {
		if !knownFields[field] {
			return nil, &ValidationError{Component: title, Field: field, Err: ErrUnknownField}
		}
	}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, &ValidationError{Component: title, Field: field, Err: ErrMissingField}
		}
	}

	link, err := v.validateLink(title, raw["link"])
	if err != nil {
		return nil, err
	}

	tags, err := v.validateTags(title, raw["tags"])
	if err != nil {
		return nil, err
	}

	summary, err := stringField(title, "summary", raw["summary"])
	if err != nil {
		return nil, err
	}

	developer, err := stringField(title, "developer", raw["developer"])
	if err != nil {
		return nil, err
	}

	date, err := v.validateDate(title, raw["date"])
	if err != nil {
		return nil, err
	}

	image, err := v.validateImage(title, raw["image"])
	if err != nil {
		return nil, err
	}

	return &catalog.Component{
		Title:     title,
		Link:      link,
		Tags:      tags,
		Summary:   summary,
		Developer: developer,
		Date:      date,
		Image:     image,
	}, nil
}

// validateLink requires the link to resolve with a success response.
func (v *Validator) validateLink(title string, value any) (string, error) {
	link, err := stringField(title, "link", value)
	if err != nil {
		return "", err
	}

	if err := v.fetcher.CheckLink(link); err != nil {
		return "", &ValidationError{Component: title, Field: "link", Err: fmt.Errorf("%w: %w", ErrLinkUnreachable, err)}
	}

	return link, nil
}

// validateTags requires a list of values from the tag vocabulary.
func (v *Validator) validateTags(title string, value any) ([]catalog.Tag, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, &ValidationError{Component: title, Field: "tags", Err: fmt.Errorf("%w: expected a list, got %T", ErrFieldType, value)}
	}

	tags := make([]catalog.Tag, 0, len(list))

	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, &ValidationError{Component: title, Field: "tags", Err: fmt.Errorf("%w: expected a string tag, got %T", ErrFieldType, item)}
		}

		tag, err := catalog.ParseTag(s)
		if err != nil {
			return nil, &ValidationError{Component: title, Field: "tags", Err: err}
		}

		tags = append(tags, tag)
	}

	return tags, nil
}

// validateDate defaults a missing date to today and requires the fixed
// textual format otherwise.
func (v *Validator) validateDate(title string, value any) (string, error) {
	if value == nil {
		return v.now().Format(catalog.DateFormat), nil
	}

	date, err := stringField(title, "date", value)
	if err != nil {
		return "", err
	}

	if _, err := time.Parse(catalog.DateFormat, date); err != nil {
		return "", &ValidationError{Component: title, Field: "date", Err: fmt.Errorf("%w %s: %q", ErrInvalidDate, catalog.DateFormat, date)}
	}

	return date, nil
}

// validateImage resolves the optional image: a remote URL is downloaded
// into the temporary directory and replaced by the downloaded path, a
// local path must exist on disk.
func (v *Validator) validateImage(title string, value any) (string, error) {
	if value == nil {
		return "", nil
	}

	image, err := stringField(title, "image", value)
	if err != nil {
		return "", err
	}

	if strings.HasPrefix(image, "http") {
		downloaded, err := v.fetcher.Download(image, v.tmpDir)
		if err != nil {
			return "", &ValidationError{Component: title, Field: "image", Err: fmt.Errorf("%w %s: %w", ErrImageDownload, image, err)}
		}

		return downloaded, nil
	}

	if !fsutil.FileExists(image) {
		return "", &ValidationError{Component: title, Field: "image", Err: fmt.Errorf("%w: %s", ErrImageNotFound, image)}
	}

	return image, nil
}

func stringField(title, field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &ValidationError{Component: title, Field: field, Err: fmt.Errorf("%w: expected a string, got %T", ErrFieldType, value)}
	}

	return s, nil
}
