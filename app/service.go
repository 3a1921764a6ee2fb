package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"painel/adapters/excel"
	"painel/domain/core"
	"painel/domain/schema"
	"painel/domain/table"
	"painel/internal"
	"painel/internal/analysis"
	"painel/internal/synth"
	"painel/internal/validate"
)

// Loader reads the raw spreadsheet for a module descriptor.
type Loader interface {
	Load(desc schema.Descriptor) (*excel.Data, error)
}

// DataService resolves module tables through the load chain: cached
// result, then spreadsheet plus validation, then synthetic fallback.
// Every request succeeds; the result's Source says which path won.
type DataService struct {
	sessionID string
	registry  *schema.Registry
	loader    Loader
	validator *validate.Validator
	generator *synth.Generator
	logger    *internal.Logger

	mu    sync.RWMutex
	cache map[string]*table.Result
	group singleflight.Group
}

// NewDataService wires the load chain for one server session.
func NewDataService(registry *schema.Registry, loader Loader, validator *validate.Validator, generator *synth.Generator, logger *internal.Logger) *DataService {
	return &DataService{
		sessionID: uuid.NewString(),
		registry:  registry,
		loader:    loader,
		validator: validator,
		generator: generator,
		logger:    logger.WithComponent("Service"),
		cache:     make(map[string]*table.Result),
	}
}

// SessionID identifies this service instance. The cache lives and dies
// with it.
func (s *DataService) SessionID() string {
	return s.sessionID
}

// Modules lists registered module names in registration order.
func (s *DataService) Modules() []string {
	return s.registry.Modules()
}

// Get returns the module's table, loading it on first use. Repeated
// calls return the same cached result.
func (s *DataService) Get(ctx context.Context, module string) (*table.Result, error) {
	desc, err := s.registry.Lookup(module)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	cached, ok := s.cache[module]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	// Concurrent first requests for the same module share one load.
	v, err, _ := s.group.Do(module, func() (interface{}, error) {
		res := s.resolve(desc)
		s.mu.Lock()
		s.cache[module] = res
		s.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*table.Result), nil
}

// Summary computes the descriptive overview for a module's table.
func (s *DataService) Summary(ctx context.Context, module string) (*analysis.Summary, error) {
	res, err := s.Get(ctx, module)
	if err != nil {
		return nil, err
	}
	desc, err := s.registry.Lookup(module)
	if err != nil {
		return nil, err
	}
	summary := analysis.Summarize(module, res.Table, desc)
	return &summary, nil
}

// Invalidate drops a module's cached result so the next Get reloads
// from disk.
func (s *DataService) Invalidate(module string) {
	s.mu.Lock()
	delete(s.cache, module)
	s.mu.Unlock()
}

// resolve runs the load chain for one module. It never fails: any
// problem with the real file routes to the synthetic generator.
func (s *DataService) resolve(desc schema.Descriptor) *table.Result {
	data, err := s.loader.Load(desc)
	if err != nil {
		s.logger.Warn("%s: %v, falling back to synthetic data", desc.Name, err)
		return s.synthetic(desc)
	}

	tbl, verdict := s.validator.Validate(data, desc)
	if !verdict.Valid() {
		s.logger.Warn("%s: %d schema violations, falling back to synthetic data", desc.Name, len(verdict.Violations))
		for _, v := range verdict.Violations {
			s.logger.Debug("%s: %s", desc.Name, v.String())
		}
		return s.synthetic(desc)
	}

	updatedAt := data.UpdatedAt
	if updatedAt == "" {
		updatedAt = core.Now().UpdateStamp()
	}

	s.logger.Info("%s: loaded %d rows from file", desc.Name, tbl.Len())
	return &table.Result{
		Module:    desc.Name,
		Table:     tbl,
		Source:    table.SourceFile,
		LoadedAt:  core.Now(),
		UpdatedAt: updatedAt,
	}
}

func (s *DataService) synthetic(desc schema.Descriptor) *table.Result {
	tbl, err := s.generator.Generate(desc.Name, 0)
	if err != nil {
		// Registry and generator cover the same module set, so this
		// only happens on a wiring mistake. Serve an empty table
		// rather than crash the dashboard.
		s.logger.Error("%s: synthetic generation failed: %v", desc.Name, err)
		tbl = table.NewTable(desc.RequiredNames())
	}
	s.logger.Info("%s: generated %d synthetic rows", desc.Name, tbl.Len())
	return &table.Result{
		Module:    desc.Name,
		Table:     tbl,
		Source:    table.SourceSynthetic,
		LoadedAt:  core.Now(),
		UpdatedAt: core.Now().UpdateStamp(),
	}
}
