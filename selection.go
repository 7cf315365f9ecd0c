package apiguide

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Selection is a set of guidelines a consumer tool applies.
//
// It is read from a YAML document like:
//
//	categories: [Naming, Type Safety] # empty or absent means all categories
//	enable: [C_SMART_PTR]             # added on top of categories
//	disable: [C_FEATURE]              # always removed, wins over enable
type Selection struct {
	enabled [idEnd]bool
}

type selectionConfig struct {
	Categories []string `yaml:"categories"`
	Enable     []string `yaml:"enable"`
	Disable    []string `yaml:"disable"`
}

// AllGuidelines returns a selection with every guideline enabled.
func AllGuidelines() *Selection {
	var s Selection
	for _, e := range get().all {
		s.enabled[e.ID] = true
	}

	return &s
}

// ParseSelection decodes a selection document.
func ParseSelection(data []byte) (*Selection, error) {
	var cfg selectionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}

	var s Selection
	if len(cfg.Categories) == 0 {
		s = *AllGuidelines()
	}

	for _, name := range cfg.Categories {
		c, err := ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("resolve selected categories: %w", err)
		}

		for _, e := range c.Entries() {
			s.enabled[e.ID] = true
		}
	}

	for _, identifier := range cfg.Enable {
		id, err := ParseID(identifier)
		if err != nil {
			return nil, fmt.Errorf("resolve enabled guidelines: %w", err)
		}

		s.enabled[id] = true
	}

	for _, identifier := range cfg.Disable {
		id, err := ParseID(identifier)
		if err != nil {
			return nil, fmt.Errorf("resolve disabled guidelines: %w", err)
		}

		s.enabled[id] = false
	}

	return &s, nil
}

// Enabled checks if the guideline is selected.
func (s *Selection) Enabled(id ID) bool {
	if !id.valid() {
		return false
	}

	return s.enabled[id]
}

// Entries returns selected guidelines in the catalogue order.
func (s *Selection) Entries() []Entry {
	var res []Entry
	for _, e := range get().all {
		if s.enabled[e.ID] {
			res = append(res, e)
		}
	}

	return res
}
