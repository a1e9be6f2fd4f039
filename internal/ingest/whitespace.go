package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// RawTable is an untyped parse result: rows of string fields with a fixed
// width, prior to structural cleaning.
type RawTable struct {
	Header  []string
	Records [][]string
	// SkippedLines counts input lines dropped for having the wrong number
	// of fields.
	SkippedLines int
}

// ReadWhitespace loads a whitespace-delimited file with a fixed expected
// field count. Blank lines are dropped; lines with a different field count
// are skipped and counted. Columns get neutral generated names (col_0..).
// A missing file or a file with no usable rows is a hard error.
func ReadWhitespace(path string, wantCols int) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw file: %w", err)
	}
	defer f.Close()

	raw := &RawTable{Header: make([]string, wantCols)}
	for i := range raw.Header {
		raw.Header[i] = fmt.Sprintf("col_%d", i)
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != wantCols {
			raw.SkippedLines++
			continue
		}
		raw.Records = append(raw.Records, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read raw file: %w", err)
	}
	if len(raw.Records) == 0 {
		return nil, fmt.Errorf("no rows with %d columns in %s; check delimiter or file format", wantCols, path)
	}
	return raw, nil
}
