package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painel/adapters/excel"
	"painel/domain/schema"
	"painel/domain/table"
)

func testDescriptor() schema.Descriptor {
	return schema.Descriptor{
		Name:      "ensino",
		FileName:  "dados_ensino.xlsx",
		SheetName: "Dados_Ensino",
		Required: []schema.Column{
			{Name: "ano", Type: schema.TypeInteger, NonNegative: true},
			{Name: "campus", Type: schema.TypeText},
			{Name: "modalidade", Type: schema.TypeEnum, Allowed: schema.Modalidades},
			{Name: "matriculados", Type: schema.TypeInteger, NonNegative: true},
		},
		Optional: []schema.Column{
			{Name: "empregabilidade", Type: schema.TypeDecimal, Percent: true},
		},
	}
}

func rawData(headers []string, cells ...[]string) *excel.Data {
	data := &excel.Data{Headers: headers}
	for _, row := range cells {
		raw := make(excel.RawRow, len(headers))
		for i, h := range headers {
			if i < len(row) {
				raw[h] = row[i]
			}
		}
		data.Rows = append(data.Rows, raw)
	}
	return data
}

func TestValidate_CleanData(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"ano", "campus", "modalidade", "matriculados"},
		[]string{"2023", "Campus Patos", "Presencial", "120"},
		[]string{"2024", "Campus Sousa", "EAD", "1.250"},
	)

	tbl, verdict := v.Validate(data, testDescriptor())
	require.True(t, verdict.Valid(), "violations: %v", verdict.Violations)
	require.NotNil(t, tbl)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"ano", "campus", "modalidade", "matriculados"}, tbl.Columns)
	assert.Equal(t, int64(1250), tbl.Rows[1]["matriculados"].Int)
}

func TestValidate_MissingRequiredColumn(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"ano", "campus", "matriculados"},
		[]string{"2023", "Campus Patos", "120"},
	)

	tbl, verdict := v.Validate(data, testDescriptor())
	assert.Nil(t, tbl)
	require.Len(t, verdict.Violations, 1)
	assert.Equal(t, KindMissingColumn, verdict.Violations[0].Kind)
	assert.Equal(t, "modalidade", verdict.Violations[0].Column)
}

func TestValidate_ColumnMatchIsCaseSensitive(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"Ano", "campus", "modalidade", "matriculados"},
		[]string{"2023", "Campus Patos", "Presencial", "120"},
	)

	tbl, verdict := v.Validate(data, testDescriptor())
	assert.Nil(t, tbl)
	assert.False(t, verdict.Valid())
}

func TestValidate_TypeMismatch(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"ano", "campus", "modalidade", "matriculados"},
		[]string{"2023", "Campus Patos", "Presencial", "muitos"},
	)

	tbl, verdict := v.Validate(data, testDescriptor())
	assert.Nil(t, tbl)
	require.Len(t, verdict.Violations, 1)
	assert.Equal(t, KindTypeMismatch, verdict.Violations[0].Kind)
	assert.Equal(t, "matriculados", verdict.Violations[0].Column)
	assert.Equal(t, 1, verdict.Violations[0].Row)
}

func TestValidate_BlankYearRejected(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"ano", "campus", "modalidade", "matriculados"},
		[]string{"", "Campus Patos", "Presencial", "120"},
	)

	tbl, verdict := v.Validate(data, testDescriptor())
	assert.Nil(t, tbl)
	require.Len(t, verdict.Violations, 1)
	assert.Equal(t, "ano", verdict.Violations[0].Column)
}

func TestValidate_BlankNumericZeroFills(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"ano", "campus", "modalidade", "matriculados"},
		[]string{"2023", "Campus Patos", "Presencial", ""},
	)

	tbl, verdict := v.Validate(data, testDescriptor())
	require.True(t, verdict.Valid(), "violations: %v", verdict.Violations)
	assert.Equal(t, int64(0), tbl.Rows[0]["matriculados"].Int)
}

func TestValidate_ConstraintViolations(t *testing.T) {
	v := New()
	desc := testDescriptor()

	t.Run("negative count", func(t *testing.T) {
		data := rawData(
			[]string{"ano", "campus", "modalidade", "matriculados"},
			[]string{"2023", "Campus Patos", "Presencial", "-5"},
		)
		tbl, verdict := v.Validate(data, desc)
		assert.Nil(t, tbl)
		require.Len(t, verdict.Violations, 1)
		assert.Equal(t, KindConstraint, verdict.Violations[0].Kind)
	})

	t.Run("enum membership", func(t *testing.T) {
		data := rawData(
			[]string{"ano", "campus", "modalidade", "matriculados"},
			[]string{"2023", "Campus Patos", "Híbrido", "10"},
		)
		tbl, verdict := v.Validate(data, desc)
		assert.Nil(t, tbl)
		require.Len(t, verdict.Violations, 1)
		assert.Equal(t, "modalidade", verdict.Violations[0].Column)
	})

	t.Run("percent bounds", func(t *testing.T) {
		data := rawData(
			[]string{"ano", "campus", "modalidade", "matriculados", "empregabilidade"},
			[]string{"2023", "Campus Patos", "Presencial", "10", "130,5"},
		)
		tbl, verdict := v.Validate(data, desc)
		assert.Nil(t, tbl)
		require.Len(t, verdict.Violations, 1)
		assert.Equal(t, "empregabilidade", verdict.Violations[0].Column)
	})
}

func TestValidate_AllOrNothing(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"ano", "campus", "modalidade", "matriculados"},
		[]string{"2023", "Campus Patos", "Presencial", "120"},
		[]string{"2024", "Campus Sousa", "EAD", "-1"},
		[]string{"2025", "Campus Picuí", "Presencial", "abc"},
	)

	// One bad row poisons the whole table and every violation is
	// reported, not just the first.
	tbl, verdict := v.Validate(data, testDescriptor())
	assert.Nil(t, tbl)
	assert.Len(t, verdict.Violations, 2)
}

func TestValidate_OptionalColumnIncludedWhenPresent(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"ano", "campus", "modalidade", "matriculados", "empregabilidade"},
		[]string{"2023", "Campus Patos", "Presencial", "120", "85,3"},
	)

	tbl, verdict := v.Validate(data, testDescriptor())
	require.True(t, verdict.Valid(), "violations: %v", verdict.Violations)
	assert.Equal(t,
		[]string{"ano", "campus", "modalidade", "matriculados", "empregabilidade"},
		tbl.Columns)
	assert.InDelta(t, 85.3, tbl.Rows[0]["empregabilidade"].Dec, 1e-9)
}

func TestValidate_UndeclaredColumnIgnored(t *testing.T) {
	v := New()
	data := rawData(
		[]string{"ano", "campus", "modalidade", "matriculados", "observacao"},
		[]string{"2023", "Campus Patos", "Presencial", "120", "nota livre"},
	)

	tbl, verdict := v.Validate(data, testDescriptor())
	require.True(t, verdict.Valid())
	assert.False(t, tbl.HasColumn("observacao"))
}

func TestCheckTable_TypedTable(t *testing.T) {
	v := New()
	desc := testDescriptor()

	tbl := table.NewTable([]string{"ano", "campus", "modalidade", "matriculados"})
	tbl.Append(table.Row{
		"ano":          table.NewIntValue(2023),
		"campus":       table.NewTextValue("Campus Patos"),
		"modalidade":   table.NewTextValue("Presencial"),
		"matriculados": table.NewIntValue(42),
	})
	assert.True(t, v.CheckTable(tbl, desc).Valid())

	tbl.Append(table.Row{
		"ano":          table.NewIntValue(2024),
		"campus":       table.NewTextValue("Campus Sousa"),
		"modalidade":   table.NewTextValue("Inventada"),
		"matriculados": table.NewIntValue(-3),
	})
	verdict := v.CheckTable(tbl, desc)
	assert.Len(t, verdict.Violations, 2)
}
