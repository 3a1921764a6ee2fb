package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painel/adapters/excel"
	"painel/domain/core"
	"painel/domain/schema"
	"painel/domain/table"
	"painel/internal"
	"painel/internal/synth"
	"painel/internal/validate"
)

func newTestService(t *testing.T, dataDir string) *DataService {
	t.Helper()
	return NewDataService(
		schema.NewRegistry(),
		excel.NewReader(dataDir),
		validate.New(),
		synth.NewGenerator(synth.DefaultConfig()),
		internal.NewLogger(internal.LogLevelError),
	)
}

func TestGet_SyntheticFallbackWhenFileMissing(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	res, err := svc.Get(context.Background(), "ensino")
	require.NoError(t, err)
	assert.Equal(t, table.SourceSynthetic, res.Source)
	assert.Greater(t, res.Table.Len(), 0)
	assert.NotEmpty(t, res.UpdatedAt)

	// The fallback still satisfies the module schema.
	desc, err := schema.NewRegistry().Lookup("ensino")
	require.NoError(t, err)
	verdict := validate.New().CheckTable(res.Table, desc)
	assert.True(t, verdict.Valid(), "violations: %v", verdict.Violations)
}

func TestGet_FileProvenance(t *testing.T) {
	dir := t.TempDir()
	registry := schema.NewRegistry()
	desc, err := registry.Lookup("servidores")
	require.NoError(t, err)

	tbl, err := synth.NewGenerator(synth.DefaultConfig()).Generate("servidores", 50)
	require.NoError(t, err)

	writer := excel.NewWriter(dir, excel.WriterConfig{AllowCreate: true})
	_, err = writer.WriteTable(desc, tbl, "15/08/2026 às 10:30")
	require.NoError(t, err)

	svc := newTestService(t, dir)
	res, err := svc.Get(context.Background(), "servidores")
	require.NoError(t, err)

	assert.Equal(t, table.SourceFile, res.Source)
	assert.Equal(t, 50, res.Table.Len())
	assert.Equal(t, "15/08/2026 às 10:30", res.UpdatedAt)
}

func TestGet_CachedResultIsReused(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	first, err := svc.Get(context.Background(), "orcamento")
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), "orcamento")
	require.NoError(t, err)

	assert.Same(t, first, second, "repeated Get must return the cached result")
}

func TestGet_InvalidFileFallsBackToSynthetic(t *testing.T) {
	dir := t.TempDir()

	// A CSV missing required columns stands in for a malformed upload.
	csv := "ano,tipo\n2023,Reclamação\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dados_ouvidoria.csv"), []byte(csv), 0o644))

	svc := newTestService(t, dir)
	res, err := svc.Get(context.Background(), "ouvidoria")
	require.NoError(t, err)
	assert.Equal(t, table.SourceSynthetic, res.Source)
}

func TestGet_UnknownModule(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	_, err := svc.Get(context.Background(), "financeiro")
	require.Error(t, err)
	assert.True(t, core.IsUnknownModule(err))
}

func TestGet_ConcurrentFirstLoads(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	const n = 16
	results := make([]*table.Result, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.Get(context.Background(), "pesquisa")
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestInvalidate_DropsCachedResult(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	first, err := svc.Get(context.Background(), "auditoria")
	require.NoError(t, err)

	svc.Invalidate("auditoria")

	second, err := svc.Get(context.Background(), "auditoria")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestSummary_UsesLoadedTable(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	summary, err := svc.Summary(context.Background(), "ensino")
	require.NoError(t, err)
	assert.Equal(t, "ensino", summary.Module)
	assert.Greater(t, summary.RowCount, 0)
	assert.NotEmpty(t, summary.Years)
	assert.Greater(t, summary.TrendSlope, 0.0, "synthetic enrollment trends upward")

	_, err = svc.Summary(context.Background(), "financeiro")
	assert.Error(t, err)
}

func TestModulesAndSessionID(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	assert.Len(t, svc.Modules(), 9)
	assert.NotEmpty(t, svc.SessionID())

	other := newTestService(t, t.TempDir())
	assert.NotEqual(t, svc.SessionID(), other.SessionID())
}
