// Package coerce converts raw spreadsheet cell text into typed values
// according to a column's declared type. Parsing is deterministic and
// tolerant of Brazilian number formatting ("1.234,56", "R$ 2.500,00",
// "85,3%") since that is what the institution's spreadsheets carry.
package coerce

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"painel/domain/schema"
	"painel/domain/table"
)

// Config defines the coercion rules.
type Config struct {
	NormalizeText bool // trim and collapse whitespace in text cells
	ZeroFillBlank bool // blank numeric cells become 0 instead of missing
}

// DefaultConfig returns the rules the dashboard uses: text is
// normalized and blank numeric cells are zero-filled, matching how the
// institution's analysts fill their spreadsheets.
func DefaultConfig() Config {
	return Config{
		NormalizeText: true,
		ZeroFillBlank: true,
	}
}

// Coercer converts cell strings to typed values.
type Coercer struct {
	config Config
}

// New creates a coercer with the given config.
func New(config Config) *Coercer {
	return &Coercer{config: config}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Coerce parses one raw cell for the given column. A nil error means
// the returned value satisfies the column's declared type; constraint
// checks (non-negative, percent bounds, enum membership) are the
// validator's job.
func (c *Coercer) Coerce(raw string, col schema.Column) (table.Value, error) {
	cell := strings.TrimSpace(raw)

	switch col.Type {
	case schema.TypeInteger:
		if cell == "" {
			if c.config.ZeroFillBlank {
				return table.NewIntValue(0), nil
			}
			return table.MissingValue(table.KindInteger), nil
		}
		num, err := c.parseNumber(cell)
		if err != nil {
			return table.Value{}, fmt.Errorf("column %s: %v", col.Name, err)
		}
		if num != math.Trunc(num) {
			return table.Value{}, fmt.Errorf("column %s: %q is not an integer", col.Name, raw)
		}
		return table.NewIntValue(int64(num)), nil

	case schema.TypeDecimal:
		if cell == "" {
			if c.config.ZeroFillBlank {
				return table.NewDecimalValue(0), nil
			}
			return table.MissingValue(table.KindDecimal), nil
		}
		num, err := c.parseNumber(cell)
		if err != nil {
			return table.Value{}, fmt.Errorf("column %s: %v", col.Name, err)
		}
		return table.NewDecimalValue(num), nil

	case schema.TypeText, schema.TypeEnum:
		if c.config.NormalizeText {
			cell = whitespaceRe.ReplaceAllString(cell, " ")
		}
		return table.NewTextValue(cell), nil

	default:
		return table.Value{}, fmt.Errorf("column %s: unknown declared type %q", col.Name, col.Type)
	}
}

// parseNumber parses a numeric cell, accepting both "1234.56" and the
// pt-BR form "1.234,56", with optional currency and percent markers.
func (c *Coercer) parseNumber(cell string) (float64, error) {
	clean := cell

	// Strip currency prefixes and percent signs before separator logic.
	clean = strings.ReplaceAll(clean, "R$", "")
	clean = strings.ReplaceAll(clean, "$", "")
	clean = strings.ReplaceAll(clean, "%", "")
	clean = strings.TrimSpace(clean)

	hasComma := strings.Contains(clean, ",")
	hasPeriod := strings.Contains(clean, ".")
	hasSpace := strings.Contains(clean, " ")

	switch {
	case hasComma && (hasPeriod || hasSpace):
		// pt-BR: period or space groups thousands, comma is decimal.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, " ", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case hasComma:
		// Lone comma is a decimal separator.
		clean = strings.ReplaceAll(clean, ",", ".")
	case hasPeriod:
		// Periods group thousands when every group after the first has
		// exactly three digits and the leading group has no padding
		// zero ("1.234" is 1234; "3.14" and "0.500" stay decimals).
		if isThousandsGrouped(clean) {
			clean = strings.ReplaceAll(clean, ".", "")
		}
	default:
		clean = strings.ReplaceAll(clean, " ", "")
	}

	val, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not numeric", cell)
	}
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, fmt.Errorf("%q is not a finite number", cell)
	}
	return val, nil
}

// isThousandsGrouped reports whether a period-separated number looks
// like "1.234" or "12.345.678" rather than a decimal.
func isThousandsGrouped(s string) bool {
	body := strings.TrimPrefix(s, "-")
	parts := strings.Split(body, ".")
	if len(parts) < 2 {
		return false
	}
	if len(parts[0]) == 0 || len(parts[0]) > 3 || strings.HasPrefix(parts[0], "0") {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}
