package apiguide

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Record is a flat representation of a guideline for external tools.
type Record struct {
	Category   string `yaml:"category"`
	Identifier string `yaml:"identifier"`
	Summary    string `yaml:"summary"`
	Title      string `yaml:"title"`
	URL        string `yaml:"url"`
}

// Records returns the whole catalogue in the [AllEntries] order.
func Records() []Record {
	all := get().all
	res := make([]Record, len(all))
	for i, e := range all {
		res[i] = e.Record()
	}

	return res
}

// Record converts the entry into its export representation.
func (e Entry) Record() Record {
	return Record{
		Category:   e.Category.String(),
		Identifier: e.ID.String(),
		Summary:    e.Summary,
		Title:      e.Title,
		URL:        e.URL,
	}
}

// WriteYAML writes [Records] as a YAML sequence.
func WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(Records()); err != nil {
		return fmt.Errorf("encode guideline records: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush guideline records: %w", err)
	}

	return nil
}

// ReadRecords decodes records written with [WriteYAML].
func ReadRecords(r io.Reader) ([]Record, error) {
	var res []Record
	if err := yaml.NewDecoder(r).Decode(&res); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decode guideline records: %w", err)
	}

	return res, nil
}

// WriteSummary writes a compact human-readable listing of the catalogue, one guideline per line.
func WriteSummary(w io.Writer) error {
	for _, e := range get().all {
		if _, err := fmt.Fprintf(w, "[%s] %s - %s\n", e.Category, e.ID, e.Title); err != nil {
			return fmt.Errorf("write summary of %s: %w", e.ID, err)
		}
	}

	return nil
}
