package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/timestables/internal/problemgen"
)

// presetSchema describes a JSON settings preset, e.g.
//
//	{"table": 7, "max_multiplier": 12, "questions": "all", "random_order": false}
//
// Omitted fields keep their configured value.
var presetSchema = map[string]any{
	"$schema":              "https://json-schema.org/draft/2020-12/schema",
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"name":           map[string]any{"type": "string"},
		"table":          map[string]any{"type": "integer", "minimum": problemgen.MinFactor, "maximum": problemgen.MaxFactor},
		"max_multiplier": map[string]any{"type": "integer", "minimum": problemgen.MinFactor, "maximum": problemgen.MaxFactor},
		"questions":      map[string]any{"type": "string", "enum": []any{"5", "10", "20", "all"}},
		"random_order":   map[string]any{"type": "boolean"},
	},
}

const presetSchemaURL = "schema://timestables/preset.json"

var (
	compileOnce    sync.Once
	compiledPreset *jsonschema.Schema
	compileErr     error
)

// Preset is a named set of game settings stored as JSON.
type Preset struct {
	Name          string  `json:"name,omitempty"`
	Table         *int    `json:"table,omitempty"`
	MaxMultiplier *int    `json:"max_multiplier,omitempty"`
	Questions     *string `json:"questions,omitempty"`
	RandomOrder   *bool   `json:"random_order,omitempty"`
}

// ParsePreset validates raw JSON against the preset schema and decodes it.
func ParsePreset(raw []byte) (*Preset, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid preset JSON: %w", err)
	}

	schema, err := getPresetSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("preset validation failed: %w", err)
	}

	var p Preset
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	return &p, nil
}

// LoadPreset reads and validates a preset file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return ParsePreset(raw)
}

// Apply overlays the preset onto the game section.
func (p *Preset) Apply(g *Game) {
	if p.Table != nil {
		g.Table = *p.Table
	}
	if p.MaxMultiplier != nil {
		g.MaxMultiplier = *p.MaxMultiplier
	}
	if p.Questions != nil {
		g.Questions = *p.Questions
	}
	if p.RandomOrder != nil {
		g.RandomOrder = *p.RandomOrder
	}
}

// getPresetSchema compiles the preset schema once.
func getPresetSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain JSON values; round-trip the Go literal.
		defBytes, err := json.Marshal(presetSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal preset schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse preset schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(presetSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledPreset, compileErr = c.Compile(presetSchemaURL)
	})
	return compiledPreset, compileErr
}
