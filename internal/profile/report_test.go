package profile

import (
	"strings"
	"testing"

	"github.com/KevinSan9/DataPortfolio/internal/table"
)

func buildFixtureTable(t *testing.T) *table.Table {
	t.Helper()
	cols := []table.Column{
		*numCol("col_0", 1, 2, 3, 4),
		*numCol("col_1", 5, 5, 5, 5),
		*numCol("col_2", 0, 0, 0, 0),
		*textCol("col_3", "COSMIC", "COSMIC", "COSMIC", "COSMIC"),
	}
	tbl, err := table.New(cols)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return tbl
}

func TestReportMarkdownContents(t *testing.T) {
	rep := Build("munra_2", buildFixtureTable(t), -1)
	md := rep.Markdown()

	if !strings.HasPrefix(md, "# munra_2 dataset schema report\n") {
		t.Fatalf("missing title: %q", md[:60])
	}
	if !strings.Contains(md, "Any 'possible role' is a hypothesis.") {
		t.Fatalf("missing disclaimer")
	}
	if !strings.Contains(md, "- Rows: **4**\n") || !strings.Contains(md, "- Columns: **4**\n") {
		t.Fatalf("missing counts:\n%s", md)
	}
	if !strings.Contains(md, "| column | dtype | nunique | min | max | % zeros | monotonic | const/low-card | possible role (hypothesis) |") {
		t.Fatalf("missing table header")
	}
	if !strings.Contains(md, "| col_0 | float64 | 4 | 1 | 4 | 0.00% | monotonic_increasing | varies | counter or time-like variable (monotonic) |") {
		t.Fatalf("unexpected col_0 row:\n%s", md)
	}
	if !strings.Contains(md, "| col_1 | float64 | 1 | 5 | 5 | 0.00% | not_monotonic | constant(5) | constant sensor/setting (fixed parameter) |") {
		t.Fatalf("unexpected col_1 row:\n%s", md)
	}
	if !strings.Contains(md, "| col_2 | float64 | 1 | 0 | 0 | 100.00% | not_monotonic | constant(0) | constant sensor/setting (fixed parameter) |") {
		t.Fatalf("unexpected col_2 row:\n%s", md)
	}
	if !strings.Contains(md, "| col_3 | string | 1 |  |  | n/a | n/a | constant(COSMIC) | label/type (constant category) |") {
		t.Fatalf("unexpected col_3 row:\n%s", md)
	}
	if !strings.Contains(md, "## Notes / next steps") {
		t.Fatalf("missing notes section")
	}
	if !strings.HasSuffix(md, "checking expected units/ranges.\n") {
		t.Fatalf("missing trailing note")
	}
}

func TestReportDeterministicAndOrdered(t *testing.T) {
	tbl := buildFixtureTable(t)
	a := Build("munra_2", tbl, -1).Markdown()
	b := Build("munra_2", tbl, -1).Markdown()
	if a != b {
		t.Fatalf("report not deterministic")
	}

	// Column rows appear in input column order.
	var last int
	for _, name := range []string{"| col_0 |", "| col_1 |", "| col_2 |", "| col_3 |"} {
		idx := strings.Index(a, name)
		if idx < 0 {
			t.Fatalf("missing row for %s", name)
		}
		if idx < last {
			t.Fatalf("row %s out of order", name)
		}
		last = idx
	}
}
