package clean

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/KevinSan9/DataPortfolio/internal/table"
)

// WriteCSV emits a cleaned table as headered CSV. Missing values render as
// empty fields; floats use the shortest round-trip representation.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for i := range t.Columns {
		header[i] = t.Columns[i].Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(t.Columns))
	for i := 0; i < t.Rows; i++ {
		for j := range t.Columns {
			c := &t.Columns[j]
			if c.Missing[i] {
				row[j] = ""
				continue
			}
			if c.Kind == table.Numeric {
				row[j] = strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
			} else {
				row[j] = c.Strings[i]
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
