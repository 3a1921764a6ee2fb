package table

import (
	"encoding/json"
	"fmt"
	"strconv"

	"painel/domain/core"
)

// Kind is the runtime type of a Value.
type Kind string

const (
	KindInteger Kind = "integer"
	KindDecimal Kind = "decimal"
	KindText    Kind = "text"
)

// Value is one typed cell. Enum-constrained cells carry KindText; the
// constraint lives on the schema column, not the value.
type Value struct {
	Kind    Kind
	Int     int64
	Dec     float64
	Text    string
	Missing bool
}

func NewIntValue(v int64) Value { return Value{Kind: KindInteger, Int: v} }

func NewDecimalValue(v float64) Value { return Value{Kind: KindDecimal, Dec: v} }

func NewTextValue(v string) Value { return Value{Kind: KindText, Text: v} }

func MissingValue(k Kind) Value { return Value{Kind: k, Missing: true} }

// Float64 returns the numeric reading of the value. Text values yield 0.
func (v Value) Float64() float64 {
	switch v.Kind {
	case KindInteger:
		return float64(v.Int)
	case KindDecimal:
		return v.Dec
	default:
		return 0
	}
}

// IsNumeric reports whether the value carries a number.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInteger || v.Kind == KindDecimal
}

func (v Value) String() string {
	if v.Missing {
		return ""
	}
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindDecimal:
		return strconv.FormatFloat(v.Dec, 'f', -1, 64)
	default:
		return v.Text
	}
}

// MarshalJSON renders integers and decimals as JSON numbers, text as a
// string and missing cells as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Missing {
		return []byte("null"), nil
	}
	switch v.Kind {
	case KindInteger:
		return json.Marshal(v.Int)
	case KindDecimal:
		return json.Marshal(v.Dec)
	case KindText:
		return json.Marshal(v.Text)
	default:
		return nil, fmt.Errorf("unknown value kind %q", v.Kind)
	}
}

// Row maps column name to typed value.
type Row map[string]Value

// Table is an ordered sequence of rows with a stable column order.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Append adds a row.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len returns the row count.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnFloats collects the numeric readings of one column, skipping
// missing cells.
func (t *Table) ColumnFloats(name string) []float64 {
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		v, ok := row[name]
		if !ok || v.Missing || !v.IsNumeric() {
			continue
		}
		out = append(out, v.Float64())
	}
	return out
}

// Provenance tags where a returned table came from.
type Provenance string

const (
	SourceFile      Provenance = "file"
	SourceSynthetic Provenance = "synthetic"
)

// Result is the load outcome handed to the presentation layer. The
// load chain never surfaces a hard failure: the outcome is always a
// populated table, with Source recording whether it came from the
// institution's spreadsheet or from the synthetic fallback.
type Result struct {
	Module    string         `json:"module"`
	Table     *Table         `json:"table"`
	Source    Provenance     `json:"source"`
	LoadedAt  core.Timestamp `json:"loaded_at"`
	UpdatedAt string         `json:"updated_at,omitempty"`
}
