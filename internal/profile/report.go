package profile

import (
	"fmt"
	"strings"

	"github.com/KevinSan9/DataPortfolio/internal/table"
)

// Report is the schema report for one dataset: the per-column summaries
// plus the counts needed for the header block.
type Report struct {
	Name    string
	Rows    int
	Columns int
	Summary []ColumnSummary
}

// Build profiles the table and assembles the report. labelCol is the index
// of the designated categorical column (negative means last).
func Build(name string, t *table.Table, labelCol int) *Report {
	return &Report{
		Name:    name,
		Rows:    t.Rows,
		Columns: len(t.Columns),
		Summary: SummarizeTable(t, labelCol),
	}
}

// Markdown renders the report. Output is deterministic: column rows appear
// in the table's original column order.
func (r *Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s dataset schema report\n", r.Name)
	b.WriteString("\n")
	b.WriteString("**Important:** This report is *functional/technical* profiling only.\n")
	b.WriteString("It does **not** assign physical meaning definitively. Any 'possible role' is a hypothesis.\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Rows: **%d**\n", r.Rows)
	fmt.Fprintf(&b, "- Columns: **%d**\n", r.Columns)
	b.WriteString("\n")

	b.WriteString("## Column summary\n")
	b.WriteString("\n")
	b.WriteString("| column | dtype | nunique | min | max | % zeros | monotonic | const/low-card | possible role (hypothesis) |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|---:|---:|---|\n")
	for _, s := range r.Summary {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s | %s | %s | %s |\n",
			s.Name, s.Dtype, s.NUnique, s.Min, s.Max, s.ZeroFraction, s.Monotonic, s.ConstantHint, s.PossibleRole)
	}

	b.WriteString("\n")
	b.WriteString("## Notes / next steps\n")
	b.WriteString("\n")
	b.WriteString("- If a column is monotonic increasing, it is often a counter or timestamp-like field.\n")
	b.WriteString("- If a column is constant (or low-cardinality), it may be a fixed sensor reading or a configuration parameter.\n")
	b.WriteString("- If a column is mostly zeros, it may be a flag/channel not used in this measurement setup.\n")
	b.WriteString("- Definitive physical mapping should be done by comparing with device documentation and checking expected units/ranges.\n")
	return b.String()
}
