package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"painel/domain/core"
	"painel/domain/table"
)

func sampleTable() *table.Table {
	tbl := table.NewTable([]string{"ano", "quantidade"})
	tbl.Append(table.Row{
		"ano":        table.NewIntValue(2023),
		"quantidade": table.NewIntValue(10),
	})
	tbl.Append(table.Row{
		"ano":        table.NewIntValue(2024),
		"quantidade": table.NewIntValue(12),
	})
	return tbl
}

func TestWriteTable_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	desc := testDescriptor()
	w := NewWriter(dir, WriterConfig{AllowCreate: true})

	path, err := w.WriteTable(desc, sampleTable(), "10/01/2026 às 14:00")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, desc.FileName), path)

	data, err := NewReader(dir).Load(desc)
	require.NoError(t, err)
	assert.Equal(t, []string{"ano", "quantidade"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "2023", data.Rows[0]["ano"])
	assert.Equal(t, "10/01/2026 às 14:00", data.UpdatedAt)
}

func TestWriteTable_MetadataSheet(t *testing.T) {
	dir := t.TempDir()
	desc := testDescriptor()
	w := NewWriter(dir, WriterConfig{AllowCreate: true})

	path, err := w.WriteTable(desc, sampleTable(), "10/01/2026 às 14:00")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Metadados")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, []string{"Informação", "Valor"}, rows[0][:2])
	assert.Equal(t, "Total de Registros", rows[2][0])
	assert.Equal(t, "2", rows[2][1])
	assert.Equal(t, "Período dos Dados", rows[3][0])
	assert.Equal(t, "2023 - 2024", rows[3][1])
}

func TestWriteTable_ReadOnlyBlocks(t *testing.T) {
	w := NewWriter(t.TempDir(), WriterConfig{ReadOnly: true, AllowCreate: true})

	_, err := w.WriteTable(testDescriptor(), sampleTable(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrReadOnlyMode)
	assert.True(t, core.IsWriteBlocked(err))
}

func TestWriteTable_CreateDisabled(t *testing.T) {
	w := NewWriter(t.TempDir(), WriterConfig{})

	_, err := w.WriteTable(testDescriptor(), sampleTable(), "")
	assert.ErrorIs(t, err, core.ErrCreateDisabled)
}

func TestWriteTable_OverwriteDisabled(t *testing.T) {
	dir := t.TempDir()
	desc := testDescriptor()

	w := NewWriter(dir, WriterConfig{AllowCreate: true})
	_, err := w.WriteTable(desc, sampleTable(), "")
	require.NoError(t, err)

	_, err = w.WriteTable(desc, sampleTable(), "")
	assert.ErrorIs(t, err, core.ErrOverwriteDisabled)

	forced := NewWriter(dir, WriterConfig{AllowCreate: true, AllowOverwrite: true})
	_, err = forced.WriteTable(desc, sampleTable(), "")
	assert.NoError(t, err)
}

func TestWriteTable_NoYearColumn(t *testing.T) {
	dir := t.TempDir()
	desc := testDescriptor()
	w := NewWriter(dir, WriterConfig{AllowCreate: true})

	tbl := table.NewTable([]string{"quantidade"})
	tbl.Append(table.Row{"quantidade": table.NewIntValue(1)})

	path, err := w.WriteTable(desc, tbl, "")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Metadados")
	require.NoError(t, err)
	assert.Equal(t, "N/A", rows[3][1])
}
