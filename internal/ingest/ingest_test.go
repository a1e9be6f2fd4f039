package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestReadWhitespaceSkipsBadLines(t *testing.T) {
	content := strings.Join([]string{
		"1 2 3",
		"",
		"4 5 6",
		"only two",
		"7\t8\t 9 ",
	}, "\n")
	p := writeFixture(t, "munra_2.txt", content)

	raw, err := ReadWhitespace(p, 3)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(raw.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(raw.Records))
	}
	if raw.SkippedLines != 1 {
		t.Fatalf("skipped = %d, want 1", raw.SkippedLines)
	}
	if raw.Header[0] != "col_0" || raw.Header[2] != "col_2" {
		t.Fatalf("header = %v", raw.Header)
	}
	if raw.Records[2][2] != "9" {
		t.Fatalf("tab-delimited fields not split: %v", raw.Records[2])
	}
}

func TestReadWhitespaceNoUsableRows(t *testing.T) {
	p := writeFixture(t, "bad.txt", "a b\nc d\n")
	if _, err := ReadWhitespace(p, 10); err == nil {
		t.Fatalf("expected error for zero usable rows")
	}
}

func TestReadWhitespaceMissingFile(t *testing.T) {
	if _, err := ReadWhitespace(filepath.Join(t.TempDir(), "nope.txt"), 10); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadCSV(t *testing.T) {
	p := writeFixture(t, "aq.csv", "Date,City,AQI\n2020-01-01,Delhi,150\n2020-01-02,Delhi\n")
	raw, err := ReadCSV(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(raw.Header) != 3 || raw.Header[2] != "AQI" {
		t.Fatalf("header = %v", raw.Header)
	}
	if len(raw.Records) != 2 {
		t.Fatalf("records = %d", len(raw.Records))
	}
	// Short rows are padded to header width.
	if raw.Records[1][2] != "" {
		t.Fatalf("short row not padded: %v", raw.Records[1])
	}
}

func TestReadCSVTooWideRow(t *testing.T) {
	p := writeFixture(t, "wide.csv", "a,b\n1,2,3\n")
	if _, err := ReadCSV(p); err == nil {
		t.Fatalf("expected error for over-wide row")
	}
}

func TestReadCSVEmpty(t *testing.T) {
	p := writeFixture(t, "empty.csv", "")
	if _, err := ReadCSV(p); err == nil {
		t.Fatalf("expected error for empty csv")
	}
}
