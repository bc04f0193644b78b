package prediction

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/schemas"
	embedded "github.com/jonathan/career-advisor/schemas"
)

// ModelError reports a model artifact that could not be read or is invalid.
type ModelError struct {
	Path  string
	Cause error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("invalid model %s: %v", e.Path, e.Cause)
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}

// LoadForest reads, schema-validates and structurally checks a forest model file.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelError{Path: path, Cause: err}
	}
	return ParseForest(path, data)
}

// ParseForest decodes a forest model document. name is used in errors.
func ParseForest(name string, data []byte) (*Forest, error) {
	if err := schemas.Validate(embedded.ForestModel, data); err != nil {
		return nil, &ModelError{Path: name, Cause: err}
	}

	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ModelError{Path: name, Cause: fmt.Errorf("failed to decode: %w", err)}
	}
	if err := f.check(); err != nil {
		return nil, &ModelError{Path: name, Cause: err}
	}
	return &f, nil
}

// ForestLoader adapts LoadForest to the Loader signature used by Watch.
func ForestLoader(path string) (Model, error) {
	f, err := LoadForest(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
