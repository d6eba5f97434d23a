package f16model

import (
	"fmt"

	"github.com/camsima/f16model/internal/aero"
	"github.com/camsima/f16model/internal/axis"
	"github.com/camsima/f16model/internal/telemetry"
	"github.com/camsima/f16model/internal/tensor"
)

// Model owns one installed aerodynamic data catalog and evaluates Step
// against it. Install, Uninstall, and Step are not reentrant and must not
// be called concurrently from multiple goroutines without external
// synchronization.
type Model struct {
	registry *axis.Registry
	catalog  *tensor.Catalog
	facade   *aero.Facade
	sink     telemetry.Sink
	consts   PlantConstants
	snapshot *telemetry.Snapshot
}

// Install loads the five axis files and 43 coefficient tables from dataDir
// and binds them to sink. On any failure, nothing from a partial load is
// retained — the catalog and registry are built in local variables and
// only assigned to the receiver once every table has loaded successfully.
func Install(dataDir string, sink telemetry.Sink) (*Model, error) {
	if sink == nil {
		sink = telemetry.NullSink{}
	}

	reg, err := axis.Load(dataDir)
	if err != nil {
		sink.Error("f16model: axis load failed", "error", err.Error())
		return nil, fmt.Errorf("install: %w", err)
	}

	cat, err := tensor.LoadCatalog(dataDir, reg)
	if err != nil {
		sink.Error("f16model: catalog load failed", "error", err.Error())
		return nil, fmt.Errorf("install: %w", err)
	}

	m := &Model{
		registry: reg,
		catalog:  cat,
		facade:   aero.NewFacade(cat, sink),
		sink:     sink,
		consts:   LoadPlantConstants(),
		snapshot: telemetry.NewSnapshot(),
	}
	sink.Info("f16model: installed", "dataDir", dataDir)
	return m, nil
}

// Uninstall releases the catalog and registry. It is idempotent: calling
// it again after it has already run is a no-op that returns nil.
func (m *Model) Uninstall() error {
	if m == nil {
		return nil
	}
	// Tensors-first-then-axes ordering is preserved even though Go's GC
	// makes manual freeing unnecessary. Nothing here is synchronized: a Step
	// called after Uninstall returns ErrNotInitialized, but a Step running
	// concurrently with Uninstall is not protected.
	m.catalog = nil
	m.registry = nil
	m.facade = nil
	m.snapshot = nil
	return nil
}

func (m *Model) installed() bool {
	return m != nil && m.catalog != nil && m.registry != nil && m.facade != nil
}

// Snapshot returns the intermediate coefficient and atmosphere values
// recorded by the most recent Step, keyed by name. It is empty until Step
// has run at least once.
func (m *Model) Snapshot() map[string]float64 {
	if m == nil || m.snapshot == nil {
		return nil
	}
	return m.snapshot.All()
}
