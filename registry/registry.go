package registry

import (
	"context"
	"sync"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/library"
	"github.com/TinyChain-Inc/tc-ir/telemetry"
)

// Registry owns a Store and the table of library modules mounted on this
// node. Register/Lookup are safe for concurrent use; mounted modules
// themselves are immutable once registered.
type Registry struct {
	store   Store
	logger  telemetry.Logger
	metrics telemetry.Metrics

	mu      sync.RWMutex
	mounted map[id.Link]library.Module
}

// Config configures a Registry. Logger and Metrics default to no-op
// implementations when left nil, so a Registry carries zero required
// ambient state.
type Config struct {
	Store   Store
	Logger  telemetry.Logger
	Metrics telemetry.Metrics
}

// New constructs a Registry backed by cfg.Store.
func New(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.NewNoopLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	return &Registry{
		store:   cfg.Store,
		logger:  logger,
		metrics: metrics,
		mounted: make(map[id.Link]library.Module),
	}
}

// Register mounts mod locally and publishes its schema to the Store.
func (r *Registry) Register(ctx context.Context, mod library.Module) error {
	schema := mod.Schema()
	if err := r.store.Put(ctx, schema); err != nil {
		r.logger.Error(ctx, "failed to publish library schema", "library", schema.Id().String(), "error", err)
		return err
	}

	r.mu.Lock()
	r.mounted[schema.Id()] = mod
	r.mu.Unlock()

	r.logger.Info(ctx, "registered library", "library", schema.Id().String(), "version", schema.Version())
	r.metrics.IncCounter("registry.register", 1, "library", string(schema.Id()))
	return nil
}

// Lookup resolves a registered schema by link, consulting the Store so a
// schema registered on another node is visible here too.
func (r *Registry) Lookup(ctx context.Context, libID id.Link) (library.Schema, bool, error) {
	r.metrics.IncCounter("registry.lookup", 1, "library", string(libID))
	return r.store.Get(ctx, libID)
}

// Mounted returns the library.Module mounted locally at libID, if any.
// Unlike Lookup, this never consults the Store: a module mounted on another
// node is visible via Lookup's schema but is not locally dispatchable.
func (r *Registry) Mounted(libID id.Link) (library.Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mod, ok := r.mounted[libID]
	return mod, ok
}
