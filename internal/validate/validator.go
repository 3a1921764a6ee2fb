// Package validate checks loaded spreadsheet data against a module
// descriptor. The verdict is all-or-nothing: any violation discards
// the whole row set and routes the caller to synthetic fallback, so no
// partially invalid table ever reaches the presentation layer.
package validate

import (
	"fmt"

	"painel/adapters/excel"
	"painel/domain/schema"
	"painel/domain/table"
	"painel/internal/coerce"
)

// ViolationKind classifies a schema violation.
type ViolationKind string

const (
	KindMissingColumn ViolationKind = "missing_column"
	KindTypeMismatch  ViolationKind = "type_mismatch"
	KindConstraint    ViolationKind = "constraint_violation"
)

// Violation records one specific schema problem.
type Violation struct {
	Kind   ViolationKind `json:"kind"`
	Column string        `json:"column"`
	Row    int           `json:"row,omitempty"` // 1-based data row, 0 for table-level
	Detail string        `json:"detail"`
}

func (v Violation) String() string {
	if v.Row > 0 {
		return fmt.Sprintf("%s: column %s, row %d: %s", v.Kind, v.Column, v.Row, v.Detail)
	}
	return fmt.Sprintf("%s: column %s: %s", v.Kind, v.Column, v.Detail)
}

// Verdict is the validator's single answer for a table.
type Verdict struct {
	Violations []Violation `json:"violations,omitempty"`
}

// Valid reports whether the table satisfied the descriptor entirely.
func (v Verdict) Valid() bool { return len(v.Violations) == 0 }

// yearColumn is present in every module schema and anchors the
// per-year series the dashboard charts.
const yearColumn = "ano"

// Validator coerces and checks raw spreadsheet data.
type Validator struct {
	coercer *coerce.Coercer
}

// New creates a validator with the default coercion rules.
func New() *Validator {
	return &Validator{coercer: coerce.New(coerce.DefaultConfig())}
}

// Validate coerces raw rows into a typed table and checks every
// declared constraint. On any violation the typed table is discarded
// and nil is returned alongside the verdict.
func (v *Validator) Validate(data *excel.Data, desc schema.Descriptor) (*table.Table, Verdict) {
	var verdict Verdict

	headerSet := make(map[string]bool, len(data.Headers))
	for _, h := range data.Headers {
		headerSet[h] = true
	}

	// Required columns must be present by exact, case-sensitive name.
	for _, col := range desc.Required {
		if !headerSet[col.Name] {
			verdict.Violations = append(verdict.Violations, Violation{
				Kind:   KindMissingColumn,
				Column: col.Name,
				Detail: "required column absent from header row",
			})
		}
	}
	if !verdict.Valid() {
		return nil, verdict
	}

	// Column order: required first, then declared optional columns the
	// file actually carries.
	columns := make([]schema.Column, 0, len(desc.Required)+len(desc.Optional))
	columns = append(columns, desc.Required...)
	for _, col := range desc.Optional {
		if headerSet[col.Name] {
			columns = append(columns, col)
		}
	}

	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	typed := table.NewTable(names)

	for i, raw := range data.Rows {
		rowNum := i + 1
		row := make(table.Row, len(columns))
		for _, col := range columns {
			// The year column anchors every time series; a blank year
			// cannot be zero-filled like other numeric cells.
			if col.Name == yearColumn && raw[col.Name] == "" {
				verdict.Violations = append(verdict.Violations, Violation{
					Kind:   KindTypeMismatch,
					Column: col.Name,
					Row:    rowNum,
					Detail: "year cannot be blank",
				})
				continue
			}
			val, err := v.coercer.Coerce(raw[col.Name], col)
			if err != nil {
				verdict.Violations = append(verdict.Violations, Violation{
					Kind:   KindTypeMismatch,
					Column: col.Name,
					Row:    rowNum,
					Detail: err.Error(),
				})
				continue
			}
			if viol, ok := checkConstraints(val, col, rowNum); !ok {
				verdict.Violations = append(verdict.Violations, viol)
				continue
			}
			row[col.Name] = val
		}
		typed.Append(row)
	}

	if !verdict.Valid() {
		return nil, verdict
	}
	return typed, verdict
}

// CheckTable verifies an already-typed table against a descriptor.
// Used to assert the invariant that every table handed to a caller
// satisfies its module's schema, whatever its provenance.
func (v *Validator) CheckTable(tbl *table.Table, desc schema.Descriptor) Verdict {
	var verdict Verdict

	for _, col := range desc.Required {
		if !tbl.HasColumn(col.Name) {
			verdict.Violations = append(verdict.Violations, Violation{
				Kind:   KindMissingColumn,
				Column: col.Name,
				Detail: "required column absent",
			})
		}
	}
	if !verdict.Valid() {
		return verdict
	}

	for i, row := range tbl.Rows {
		rowNum := i + 1
		for _, name := range tbl.Columns {
			col, ok := desc.Column(name)
			if !ok {
				continue // undeclared extra column, not a violation
			}
			val, present := row[name]
			if !present || val.Missing {
				if isRequired(desc, name) {
					verdict.Violations = append(verdict.Violations, Violation{
						Kind:   KindTypeMismatch,
						Column: name,
						Row:    rowNum,
						Detail: "required value missing",
					})
				}
				continue
			}
			if !kindMatches(val.Kind, col.Type) {
				verdict.Violations = append(verdict.Violations, Violation{
					Kind:   KindTypeMismatch,
					Column: name,
					Row:    rowNum,
					Detail: fmt.Sprintf("value kind %s does not match declared type %s", val.Kind, col.Type),
				})
				continue
			}
			if viol, ok := checkConstraints(val, col, rowNum); !ok {
				verdict.Violations = append(verdict.Violations, viol)
			}
		}
	}
	return verdict
}

// checkConstraints enforces non-negative, percent-bound and enum rules.
func checkConstraints(val table.Value, col schema.Column, rowNum int) (Violation, bool) {
	if val.Missing {
		return Violation{}, true
	}
	if col.NonNegative && val.IsNumeric() && val.Float64() < 0 {
		return Violation{
			Kind:   KindConstraint,
			Column: col.Name,
			Row:    rowNum,
			Detail: fmt.Sprintf("negative value %s in non-negative column", val.String()),
		}, false
	}
	if col.Percent && val.IsNumeric() {
		if f := val.Float64(); f < 0 || f > 100 {
			return Violation{
				Kind:   KindConstraint,
				Column: col.Name,
				Row:    rowNum,
				Detail: fmt.Sprintf("percentage %s outside [0, 100]", val.String()),
			}, false
		}
	}
	if col.Type == schema.TypeEnum && !col.AllowsValue(val.Text) {
		return Violation{
			Kind:   KindConstraint,
			Column: col.Name,
			Row:    rowNum,
			Detail: fmt.Sprintf("value %q not in allowed set", val.Text),
		}, false
	}
	return Violation{}, true
}

func kindMatches(k table.Kind, t schema.ColumnType) bool {
	switch t {
	case schema.TypeInteger:
		return k == table.KindInteger
	case schema.TypeDecimal:
		// Integer-valued cells are acceptable in decimal columns.
		return k == table.KindDecimal || k == table.KindInteger
	case schema.TypeText, schema.TypeEnum:
		return k == table.KindText
	default:
		return false
	}
}

func isRequired(desc schema.Descriptor, name string) bool {
	for _, c := range desc.Required {
		if c.Name == name {
			return true
		}
	}
	return false
}
