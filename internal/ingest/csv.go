package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadCSV loads a headered CSV file. Rows shorter than the header are
// padded with empty fields; longer rows are a hard error.
func ReadCSV(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty csv: %s", path)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	raw := &RawTable{Header: append([]string(nil), header...)}
	ncol := len(raw.Header)

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(raw.Records)+1, err)
		}
		if len(rec) > ncol {
			return nil, fmt.Errorf("row %d has %d columns, want %d", len(raw.Records)+1, len(rec), ncol)
		}
		row := make([]string, ncol)
		copy(row, rec)
		raw.Records = append(raw.Records, row)
	}
	return raw, nil
}
