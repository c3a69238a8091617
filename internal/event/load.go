package event

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// ErrEmptyDataset is returned when a dataset contains no events.
var ErrEmptyDataset = errors.New("dataset contains no events")

// ValidationError reports schema violations found in a dataset.
type ValidationError struct {
	Problems []string
}

// Error returns the violations as a single message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("dataset schema validation failed: %s", strings.Join(e.Problems, "; "))
}

// Validate checks raw dataset JSON against the embedded event schema.
// A nil return means the document is well-formed and schema-valid.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return &ValidationError{Problems: problems}
}

// Decode reads, validates, and decodes an event dataset from r.
func Decode(r io.Reader) ([]Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	validateErr := Validate(data)
	if validateErr != nil {
		return nil, validateErr
	}

	var events []Event

	dec := json.NewDecoder(bytes.NewReader(data))

	decodeErr := dec.Decode(&events)
	if decodeErr != nil {
		return nil, fmt.Errorf("decode dataset: %w", decodeErr)
	}

	if len(events) == 0 {
		return nil, ErrEmptyDataset
	}

	return events, nil
}

// LoadFile reads an event dataset from a JSON file.
func LoadFile(path string) ([]Event, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	events, decodeErr := Decode(f)
	if decodeErr != nil {
		return nil, fmt.Errorf("load %s: %w", path, decodeErr)
	}

	return events, nil
}
