package table

import "fmt"

// Kind is the inferred value kind of a column after structural cleaning.
type Kind int

const (
	Numeric Kind = iota
	Text
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "float64"
	case Text:
		return "string"
	}
	return "unknown"
}

// Column is an ordered sequence of values of a single kind. Missing entries
// are tracked in the mask rather than as in-band sentinels. For a numeric
// column Floats is populated; for a text column Strings is. Both slices are
// aligned with Missing and share the column's row count.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
	Missing []bool
}

// Len returns the row count including missing entries.
func (c *Column) Len() int {
	return len(c.Missing)
}

// NonMissingFloats returns the numeric values with missing entries removed,
// in original row order. Returns nil for text columns.
func (c *Column) NonMissingFloats() []float64 {
	if c.Kind != Numeric {
		return nil
	}
	out := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if !c.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// NonMissingStrings returns the text values with missing entries removed,
// in original row order. Returns nil for numeric columns.
func (c *Column) NonMissingStrings() []string {
	if c.Kind != Text {
		return nil
	}
	out := make([]string, 0, len(c.Strings))
	for i, v := range c.Strings {
		if !c.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// NUnique counts distinct non-missing values.
func (c *Column) NUnique() int {
	switch c.Kind {
	case Numeric:
		seen := make(map[float64]struct{})
		for i, v := range c.Floats {
			if !c.Missing[i] {
				seen[v] = struct{}{}
			}
		}
		return len(seen)
	default:
		seen := make(map[string]struct{})
		for i, v := range c.Strings {
			if !c.Missing[i] {
				seen[v] = struct{}{}
			}
		}
		return len(seen)
	}
}

// Table is an ordered set of equal-length columns. The profiler treats it
// as read-only; callers own construction.
type Table struct {
	Columns []Column
	Rows    int
}

// New validates that all columns share the same row count and returns a
// Table over them.
func New(cols []Column) (*Table, error) {
	rows := 0
	for i := range cols {
		n := cols[i].Len()
		if i == 0 {
			rows = n
			continue
		}
		if n != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", cols[i].Name, n, rows)
		}
	}
	return &Table{Columns: cols, Rows: rows}, nil
}
