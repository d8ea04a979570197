// Package seedfile loads and validates JSON seed documents for the
// activity registry.
package seedfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"activity-registry/internal/registry"
)

// SeedFile is the on-disk seed document format.
type SeedFile struct {
	Version     string         `json:"version"`
	LastUpdated string         `json:"lastUpdated"`
	Activities  []SeedActivity `json:"activities"`
}

// SeedActivity is one activity entry in a seed document.
type SeedActivity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

const seedSchema = `{
	"type": "object",
	"required": ["version", "activities"],
	"properties": {
		"version": {"type": "string"},
		"lastUpdated": {"type": "string"},
		"activities": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "description", "schedule", "max_participants"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"schedule": {"type": "string"},
					"max_participants": {"type": "integer", "minimum": 1},
					"participants": {
						"type": "array",
						"items": {"type": "string"}
					}
				}
			}
		}
	}
}`

// Load reads a seed document from path, validating it against the seed
// schema before decoding.
func Load(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes a seed document.
func Parse(data []byte) (*SeedFile, error) {
	schemaLoader := gojsonschema.NewStringLoader(seedSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("seed validation failed: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("invalid seed document: %s", strings.Join(msgs, "; "))
	}

	var sf SeedFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to decode seed document: %w", err)
	}

	seen := make(map[string]bool, len(sf.Activities))
	for _, a := range sf.Activities {
		if seen[a.Name] {
			return nil, fmt.Errorf("duplicate activity name %q in seed document", a.Name)
		}
		seen[a.Name] = true
	}

	return &sf, nil
}

// ToActivities converts the seed entries into registry activities.
func (sf *SeedFile) ToActivities() []registry.Activity {
	out := make([]registry.Activity, 0, len(sf.Activities))
	for _, a := range sf.Activities {
		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		out = append(out, registry.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		})
	}
	return out
}

// Save writes the seed document to path with stable indentation.
func Save(path string, sf *SeedFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode seed document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write seed file %s: %w", path, err)
	}
	return nil
}
