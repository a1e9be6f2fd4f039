package profile

import (
	"fmt"
	"strconv"

	"github.com/KevinSan9/DataPortfolio/internal/table"
)

// Monotonicity hint values. A constant numeric column is both non-decreasing
// and non-increasing and deliberately lands on HintNotMonotonic: the
// monotonic labels require strict directional dominance.
const (
	HintEmpty         = "empty"
	HintNotApplicable = "n/a"
	HintIncreasing    = "monotonic_increasing"
	HintDecreasing    = "monotonic_decreasing"
	HintNotMonotonic  = "not_monotonic"
)

// nearConstant thresholds: few distinct values confined to a small absolute
// range, regardless of magnitude.
const (
	nearConstantMaxUnique = 5
	nearConstantMaxRange  = 0.5
	lowCardinalityMax     = 3
	mostlyZerosFraction   = 0.95
)

// MonotonicHint classifies a column's ordered non-missing values as
// non-decreasing, non-increasing, or neither. Text columns get n/a.
func MonotonicHint(c *table.Column) string {
	if c.Kind != table.Numeric {
		// An all-missing text column still reports empty.
		if len(c.NonMissingStrings()) == 0 {
			return HintEmpty
		}
		return HintNotApplicable
	}
	vals := c.NonMissingFloats()
	if len(vals) == 0 {
		return HintEmpty
	}
	inc, dec := true, true
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			inc = false
		}
		if vals[i] > vals[i-1] {
			dec = false
		}
	}
	switch {
	case inc && !dec:
		return HintIncreasing
	case dec && !inc:
		return HintDecreasing
	}
	return HintNotMonotonic
}

// ZeroFraction returns the share of non-missing values exactly equal to
// zero, as a percentage with two decimals, or n/a for text/empty columns.
func ZeroFraction(c *table.Column) string {
	if c.Kind != table.Numeric {
		return HintNotApplicable
	}
	vals := c.NonMissingFloats()
	if len(vals) == 0 {
		return HintNotApplicable
	}
	return fmt.Sprintf("%.2f%%", zeroShare(vals)*100)
}

func zeroShare(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var zeros int
	for _, v := range vals {
		if v == 0 {
			zeros++
		}
	}
	return float64(zeros) / float64(len(vals))
}

// ConstantHint classifies cardinality: constant, near-constant (numeric
// only), low-cardinality, or varies. Check order matters.
func ConstantHint(c *table.Column) string {
	nun := c.NUnique()
	if nun == 0 {
		return HintEmpty
	}
	if nun == 1 {
		return fmt.Sprintf("constant(%s)", firstValue(c))
	}
	if c.Kind == table.Numeric && nun <= nearConstantMaxUnique {
		mn, mx := minMax(c.NonMissingFloats())
		if rng := mx - mn; rng <= nearConstantMaxRange {
			return fmt.Sprintf("near_constant(nunique=%d, range=%.4g)", nun, rng)
		}
	}
	if nun <= lowCardinalityMax {
		return fmt.Sprintf("low_cardinality(nunique=%d)", nun)
	}
	return "varies"
}

// firstValue renders the first non-missing value in its natural form.
func firstValue(c *table.Column) string {
	for i := 0; i < c.Len(); i++ {
		if c.Missing[i] {
			continue
		}
		if c.Kind == table.Numeric {
			return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
		}
		return c.Strings[i]
	}
	return ""
}

func minMax(vals []float64) (mn, mx float64) {
	mn, mx = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return mn, mx
}

// Role hypothesis labels. These are heuristics, not guarantees.
const (
	RoleLabel        = "label/type (constant category)"
	RoleConstant     = "constant sensor/setting (fixed parameter)"
	RoleNearConstant = "near-constant reading (low variation)"
	RoleMostlyZeros  = "flag/status/unused channel (mostly zeros)"
	RoleCounter      = "counter or time-like variable (monotonic)"
	RoleUnknown      = "unknown"
)

// roleRule is one step of the role classifier: first predicate to match
// wins, so the order of the rule list is part of the contract.
type roleRule struct {
	label string
	match func(c *table.Column, isLabelCol bool) bool
}

var roleRules = []roleRule{
	{RoleLabel, func(c *table.Column, isLabelCol bool) bool {
		return isLabelCol && c.NUnique() == 1
	}},
	{RoleConstant, func(c *table.Column, _ bool) bool {
		return c.Kind == table.Numeric && c.NUnique() == 1
	}},
	{RoleNearConstant, func(c *table.Column, _ bool) bool {
		if c.Kind != table.Numeric {
			return false
		}
		vals := c.NonMissingFloats()
		if len(vals) == 0 || c.NUnique() > nearConstantMaxUnique {
			return false
		}
		mn, mx := minMax(vals)
		return mx-mn <= nearConstantMaxRange
	}},
	{RoleMostlyZeros, func(c *table.Column, _ bool) bool {
		if c.Kind != table.Numeric {
			return false
		}
		vals := c.NonMissingFloats()
		return len(vals) > 0 && zeroShare(vals) > mostlyZerosFraction
	}},
	{RoleCounter, func(c *table.Column, _ bool) bool {
		return MonotonicHint(c) == HintIncreasing
	}},
}

// PossibleRole runs the priority-ordered rule chain for a column.
// isLabelCol marks the designated categorical column of the table.
func PossibleRole(c *table.Column, isLabelCol bool) string {
	for _, r := range roleRules {
		if r.match(c, isLabelCol) {
			return r.label
		}
	}
	return RoleUnknown
}

// ColumnSummary is the per-column profiling record. All fields are derived
// from the column's values alone; monotonicity additionally depends on the
// existing row order.
type ColumnSummary struct {
	Name         string
	Dtype        string
	NUnique      int
	Min          string
	Max          string
	ZeroFraction string
	Monotonic    string
	ConstantHint string
	PossibleRole string
}

// Summarize profiles a single column. isLabelCol marks the designated
// categorical column (by default the table's last column).
func Summarize(c *table.Column, isLabelCol bool) ColumnSummary {
	s := ColumnSummary{
		Name:         c.Name,
		Dtype:        c.Kind.String(),
		NUnique:      c.NUnique(),
		ZeroFraction: ZeroFraction(c),
		Monotonic:    MonotonicHint(c),
		ConstantHint: ConstantHint(c),
		PossibleRole: PossibleRole(c, isLabelCol),
	}
	if c.Kind == table.Numeric {
		if vals := c.NonMissingFloats(); len(vals) > 0 {
			mn, mx := minMax(vals)
			s.Min = fmt.Sprintf("%.4g", mn)
			s.Max = fmt.Sprintf("%.4g", mx)
		}
	}
	return s
}

// SummarizeTable profiles every column in original order. labelCol is the
// index of the designated categorical column; pass a negative value to use
// the last column.
func SummarizeTable(t *table.Table, labelCol int) []ColumnSummary {
	if labelCol < 0 {
		labelCol = len(t.Columns) - 1
	}
	out := make([]ColumnSummary, 0, len(t.Columns))
	for i := range t.Columns {
		out = append(out, Summarize(&t.Columns[i], i == labelCol))
	}
	return out
}
