// Package dataset provides the in-memory categorical column bundle that the
// association sweep consumes.
package dataset

import (
	"fmt"
	"strings"

	"github.com/braingram/scipy/domain/core"
)

// Column is one named categorical variable: a value per observation row.
type Column struct {
	Key    core.VariableKey `json:"key"`
	Values []string         `json:"values"`
}

// Bundle is the canonical input for pairwise association sweeps: a set of
// categorical columns over the same observation rows.
type Bundle struct {
	Columns   []Column       `json:"columns"`
	CreatedAt core.Timestamp `json:"created_at"`
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{CreatedAt: core.Now()}
}

// AddColumn appends a column. Every column must have the same number of rows
// and a key not already present.
func (b *Bundle) AddColumn(key core.VariableKey, values []string) error {
	if strings.TrimSpace(key.String()) == "" {
		return fmt.Errorf("column key cannot be empty")
	}
	for _, c := range b.Columns {
		if c.Key == key {
			return fmt.Errorf("duplicate column key %q", key)
		}
	}
	if len(b.Columns) > 0 && len(values) != b.RowCount() {
		return fmt.Errorf("column %q has %d rows, bundle has %d", key, len(values), b.RowCount())
	}
	b.Columns = append(b.Columns, Column{Key: key, Values: values})
	return nil
}

// ColumnCount returns the number of columns.
func (b *Bundle) ColumnCount() int {
	return len(b.Columns)
}

// RowCount returns the number of observation rows.
func (b *Bundle) RowCount() int {
	if len(b.Columns) == 0 {
		return 0
	}
	return len(b.Columns[0].Values)
}

// Fingerprint returns a deterministic hash of the bundle contents, for
// replayable sweep audit records.
func (b *Bundle) Fingerprint() core.Hash {
	var data strings.Builder
	for _, c := range b.Columns {
		data.WriteString(c.Key.String())
		data.WriteString("\x1f")
		for _, v := range c.Values {
			data.WriteString(v)
			data.WriteString("\x1e")
		}
	}
	return core.NewHash([]byte(data.String()))
}
