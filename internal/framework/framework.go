// Package framework loads the RIASEC indicator framework: the six
// interest categories with their weighted indicator phrase lists, and
// the 3-letter combination descriptions. The framework is loaded once
// and is immutable for the process lifetime, so it is safe to share
// across concurrent readers.
package framework

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/careermap/riasec/internal/common"
	"github.com/careermap/riasec/internal/model"
)

// DefaultDescription is returned for codes with no combination entry.
const DefaultDescription = "No description available"

// Type holds one interest category and its indicator vocabulary.
type Type struct {
	Letter   string
	Name     string
	Title    string
	Strong   []string
	Moderate []string
	Keywords []string
}

// Combination describes a 3-letter code.
type Combination struct {
	Description  string   `json:"description"`
	Gift         string   `json:"gift"`
	CareerThemes []string `json:"career_themes"`
}

// Framework is the loaded, read-only indicator table.
type Framework struct {
	types  map[string]Type
	combos map[string]Combination
}

type fileIndicators struct {
	Strong   []string `json:"strong"`
	Moderate []string `json:"moderate"`
}

type fileType struct {
	Name       string         `json:"name"`
	Title      string         `json:"title"`
	Indicators fileIndicators `json:"skill_indicators"`
	Keywords   []string       `json:"keywords"`
}

type fileDoc struct {
	Types        map[string]fileType        `json:"riasec_types"`
	Combinations map[string]json.RawMessage `json:"combinations"`
}

// Load reads the framework definition from path. A missing or malformed
// file is recovered locally by falling back to the embedded table; Load
// never fails, so classification is always possible.
func Load(path string) *Framework {
	if path == "" {
		return Embedded()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("framework file not readable, using embedded table",
			"path", path, "error", err)
		return Embedded()
	}

	fw, err := parse(data)
	if err != nil {
		slog.Warn("framework file invalid, using embedded table",
			"path", path, "error", err)
		return Embedded()
	}

	slog.Debug("framework loaded",
		"path", path, "combinations", len(fw.combos))
	return fw
}

func parse(data []byte) (*Framework, error) {
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse framework JSON: %w", err)
	}

	types := make(map[string]Type, len(doc.Types))
	for letter, ft := range doc.Types {
		letter = strings.ToUpper(strings.TrimSpace(letter))
		types[letter] = Type{
			Letter:   letter,
			Name:     ft.Name,
			Title:    ft.Title,
			Strong:   ft.Indicators.Strong,
			Moderate: ft.Indicators.Moderate,
			Keywords: ft.Keywords,
		}
	}

	combos := make(map[string]Combination, len(doc.Combinations))
	for code, raw := range doc.Combinations {
		combos[strings.ToUpper(code)] = parseCombination(raw)
	}

	fw := &Framework{types: types, combos: combos}
	if err := fw.validate(); err != nil {
		return nil, err
	}
	return fw, nil
}

// parseCombination accepts either the full object form or a bare
// description string, which older framework files used.
func parseCombination(raw json.RawMessage) Combination {
	var combo Combination
	if err := json.Unmarshal(raw, &combo); err == nil {
		return combo
	}
	var desc string
	if err := json.Unmarshal(raw, &desc); err == nil {
		return Combination{Description: desc}
	}
	return Combination{}
}

// validate enforces that the six letters are present and exhaustive.
func (f *Framework) validate() error {
	if len(f.types) != len(model.Letters) {
		return fmt.Errorf("%w: expected %d types, got %d",
			common.ErrInvalidFramework, len(model.Letters), len(f.types))
	}
	for _, l := range model.Letters {
		t, ok := f.types[string(l)]
		if !ok {
			return fmt.Errorf("%w: missing type %q", common.ErrInvalidFramework, string(l))
		}
		if t.Name == "" {
			return fmt.Errorf("%w: type %q has no name", common.ErrInvalidFramework, string(l))
		}
	}
	return nil
}

// Type returns the category for a single letter.
func (f *Framework) Type(letter string) (Type, bool) {
	t, ok := f.types[letter]
	return t, ok
}

// TypeName returns the display name for a letter, or "Unknown".
func (f *Framework) TypeName(letter string) string {
	if t, ok := f.types[letter]; ok {
		return t.Name
	}
	return "Unknown"
}

// Types returns all six categories in the fixed alphabet order.
func (f *Framework) Types() []Type {
	out := make([]Type, 0, len(model.Letters))
	for _, l := range model.Letters {
		out = append(out, f.types[string(l)])
	}
	return out
}

// Combination looks up a 3-letter code in the combinations table.
func (f *Framework) Combination(code string) (Combination, bool) {
	c, ok := f.combos[strings.ToUpper(code)]
	return c, ok
}

// Describe returns the description and gift for a code, applying the
// documented default when the combinations table has no entry.
func (f *Framework) Describe(code string) (description, gift string) {
	if c, ok := f.Combination(code); ok && c.Description != "" {
		return c.Description, c.Gift
	}
	return DefaultDescription, ""
}

// Combinations returns the number of known 3-letter combinations.
func (f *Framework) Combinations() int {
	return len(f.combos)
}
