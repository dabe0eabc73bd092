package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rpgo/enoughcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of retirement input files
type InputParser struct {
	// Strict rejects unknown keys so typos do not silently fall back to defaults.
	Strict bool
}

// NewInputParser creates a new strict input parser
func NewInputParser() *InputParser {
	return &InputParser{Strict: true}
}

// LoadFromFile loads inputs from a file, validates and returns them. A .json file
// uses the camelCase API shape (ParseJSON); anything else is YAML with snake_case keys.
// Keys missing from the file keep their DefaultInputs value.
func (ip *InputParser) LoadFromFile(filename string) (*domain.RetirementInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return ip.ParseJSON(data)
	}
	return ip.Parse(data)
}

// Parse decodes YAML bytes (snake_case keys) over the default inputs and validates the result.
func (ip *InputParser) Parse(data []byte) (*domain.RetirementInputs, error) {
	inputs := domain.DefaultInputs()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(ip.Strict)
	if err := dec.Decode(&inputs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &inputs, nil
}

// ParseJSON decodes the camelCase JSON shape accepted by the HTTP API, and written
// as the inputs block of a json report, over the default inputs and validates the result.
// A posted incomes list replaces the default sources; it is never merged into them.
func (ip *InputParser) ParseJSON(data []byte) (*domain.RetirementInputs, error) {
	inputs, err := decodeJSONInputs(data, ip.Strict)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := Validate(inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &inputs, nil
}

func decodeJSONInputs(data []byte, strict bool) (domain.RetirementInputs, error) {
	inputs := domain.DefaultInputs()
	defaults := inputs.Incomes
	if len(bytes.TrimSpace(data)) == 0 {
		return inputs, nil
	}

	// decoding into a populated slice merges fields into its elements
	inputs.Incomes = nil
	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&inputs); err != nil {
		return inputs, err
	}

	var keys struct {
		Incomes json.RawMessage `json:"incomes"`
	}
	if err := json.Unmarshal(data, &keys); err != nil {
		return inputs, err
	}
	if keys.Incomes == nil {
		inputs.Incomes = defaults
	}
	return inputs, nil
}

// SaveInputs writes inputs as YAML.
func SaveInputs(inputs domain.RetirementInputs, filename string) error {
	b, err := yaml.Marshal(inputs)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
