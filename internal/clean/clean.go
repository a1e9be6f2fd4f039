// Package clean performs structural cleaning only: type coercion, whitespace
// trimming and high-missingness column pruning. It never interprets values.
package clean

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KevinSan9/DataPortfolio/internal/ingest"
	"github.com/KevinSan9/DataPortfolio/internal/table"
)

// Result reports what a cleaning pass did. It replaces ad-hoc progress
// prints so callers decide how to surface it.
type Result struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
	// DroppedColumns lists columns removed for exceeding the missingness
	// threshold, in original column order.
	DroppedColumns []string `json:"dropped_columns,omitempty"`
	// CoerceFailures counts values per column that could not be coerced to
	// the column's target type and became missing.
	CoerceFailures map[string]int `json:"coerce_failures,omitempty"`
	// SkippedLines is carried over from the loader.
	SkippedLines int `json:"skipped_lines,omitempty"`
}

// Warnings renders the result's noteworthy findings as human-readable lines.
func (r *Result) Warnings() []string {
	var out []string
	if r.SkippedLines > 0 {
		out = append(out, fmt.Sprintf("skipped %d malformed input lines", r.SkippedLines))
	}
	for _, name := range r.DroppedColumns {
		out = append(out, fmt.Sprintf("dropped column %s (too many missing values)", name))
	}
	for name, n := range r.CoerceFailures {
		out = append(out, fmt.Sprintf("column %s: %d values failed coercion", name, n))
	}
	return out
}

// Instrument coerces every column of a fixed-width raw table to numeric
// except the designated label column, which is kept as trimmed text.
// Coercion failures become missing values rather than errors.
func Instrument(raw *ingest.RawTable, labelCol int) (*table.Table, *Result, error) {
	ncol := len(raw.Header)
	if labelCol < 0 {
		labelCol = ncol - 1
	}
	if labelCol >= ncol {
		return nil, nil, fmt.Errorf("label column %d out of range (have %d columns)", labelCol, ncol)
	}

	res := &Result{
		Rows:           len(raw.Records),
		Columns:        ncol,
		CoerceFailures: make(map[string]int),
		SkippedLines:   raw.SkippedLines,
	}

	cols := make([]table.Column, ncol)
	for j := 0; j < ncol; j++ {
		name := raw.Header[j]
		if j == labelCol {
			cols[j] = textColumn(name, raw.Records, j)
			continue
		}
		c := table.Column{Name: name, Kind: table.Numeric}
		for _, rec := range raw.Records {
			v, ok := parseFloat(rec[j])
			if !ok {
				if strings.TrimSpace(rec[j]) != "" {
					res.CoerceFailures[name]++
				}
				c.Floats = append(c.Floats, 0)
				c.Missing = append(c.Missing, true)
				continue
			}
			c.Floats = append(c.Floats, v)
			c.Missing = append(c.Missing, false)
		}
		cols[j] = c
	}
	if len(res.CoerceFailures) == 0 {
		res.CoerceFailures = nil
	}

	t, err := table.New(cols)
	if err != nil {
		return nil, nil, err
	}
	return t, res, nil
}

// CSVOptions controls headered-CSV cleaning.
type CSVOptions struct {
	// DateColumns are coerced to a normalized date representation.
	DateColumns []string
	// TrimColumns are forced to text with surrounding whitespace removed.
	TrimColumns []string
	// DropThreshold removes columns whose missing ratio exceeds it.
	// Zero disables pruning.
	DropThreshold float64
}

// CSV structurally cleans a headered raw table: configured date columns are
// coerced to normalized dates, configured text columns are trimmed, the
// remaining columns become numeric when every present value parses, and
// columns above the missingness threshold are dropped.
func CSV(raw *ingest.RawTable, opts CSVOptions) (*table.Table, *Result, error) {
	res := &Result{
		Rows:           len(raw.Records),
		CoerceFailures: make(map[string]int),
		SkippedLines:   raw.SkippedLines,
	}

	dateSet := lowerSet(opts.DateColumns)
	trimSet := lowerSet(opts.TrimColumns)

	var cols []table.Column
	for j, name := range raw.Header {
		key := strings.ToLower(strings.TrimSpace(name))
		var c table.Column
		switch {
		case dateSet[key]:
			c = dateColumn(name, raw.Records, j, res)
		case trimSet[key]:
			c = textColumn(name, raw.Records, j)
		default:
			c = inferColumn(name, raw.Records, j)
		}

		if opts.DropThreshold > 0 && res.Rows > 0 {
			missing := 0
			for _, m := range c.Missing {
				if m {
					missing++
				}
			}
			if float64(missing)/float64(res.Rows) > opts.DropThreshold {
				res.DroppedColumns = append(res.DroppedColumns, name)
				continue
			}
		}
		cols = append(cols, c)
	}
	res.Columns = len(cols)
	if len(res.CoerceFailures) == 0 {
		res.CoerceFailures = nil
	}

	t, err := table.New(cols)
	if err != nil {
		return nil, nil, err
	}
	return t, res, nil
}

// inferColumn makes a column numeric when every present value parses as a
// float, otherwise keeps it as trimmed text.
func inferColumn(name string, records [][]string, j int) table.Column {
	numeric := true
	present := false
	for _, rec := range records {
		v := strings.TrimSpace(rec[j])
		if v == "" {
			continue
		}
		present = true
		if _, ok := parseFloat(v); !ok {
			numeric = false
			break
		}
	}
	if !numeric || !present {
		return textColumn(name, records, j)
	}
	c := table.Column{Name: name, Kind: table.Numeric}
	for _, rec := range records {
		v, ok := parseFloat(rec[j])
		if !ok {
			c.Floats = append(c.Floats, 0)
			c.Missing = append(c.Missing, true)
			continue
		}
		c.Floats = append(c.Floats, v)
		c.Missing = append(c.Missing, false)
	}
	return c
}

func textColumn(name string, records [][]string, j int) table.Column {
	c := table.Column{Name: name, Kind: table.Text}
	for _, rec := range records {
		v := strings.TrimSpace(rec[j])
		c.Strings = append(c.Strings, v)
		c.Missing = append(c.Missing, v == "")
	}
	return c
}

func dateColumn(name string, records [][]string, j int, res *Result) table.Column {
	c := table.Column{Name: name, Kind: table.Text}
	for _, rec := range records {
		v := strings.TrimSpace(rec[j])
		if v == "" {
			c.Strings = append(c.Strings, "")
			c.Missing = append(c.Missing, true)
			continue
		}
		t, ok := parseTime(v)
		if !ok {
			res.CoerceFailures[name]++
			c.Strings = append(c.Strings, "")
			c.Missing = append(c.Missing, true)
			continue
		}
		c.Strings = append(c.Strings, formatTime(t))
		c.Missing = append(c.Missing, false)
	}
	return c
}

func lowerSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[strings.ToLower(strings.TrimSpace(n))] = true
	}
	return out
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nan", "na", "null":
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var timeLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
}

func parseTime(s string) (time.Time, bool) {
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
