package percolation

import (
	"context"
	"errors"

	"github.com/katalvlaran/poreflow/cluster"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrMode indicates Options.Mode is neither cluster.Bond nor cluster.Site.
	ErrMode = errors.New("percolation: mode must be bond or site")
	// ErrNotConfigured indicates Run was called before Setup bound a phase.
	ErrNotConfigured = errors.New("percolation: engine not configured, call Setup first")
	// ErrNoInlets indicates an access-limited run without inlet sites.
	ErrNoInlets = errors.New("percolation: inlet sites must be specified first")
	// ErrNoOutlets indicates a threshold/percolation query without outlets.
	ErrNoOutlets = errors.New("percolation: outlet sites must be specified first")
	// ErrNotRun indicates a result query before a successful Run.
	ErrNotRun = errors.New("percolation: engine has not been run")
	// ErrAccessOnly indicates PercolationThreshold on a non-access-limited
	// engine, which is not supported.
	ErrAccessOnly = errors.New("percolation: threshold is only defined for access-limited runs")
	// ErrBadPoints indicates an empty or non-increasing pressure sequence.
	ErrBadPoints = errors.New("percolation: pressure points must be strictly increasing")
)

// Options configures an engine. Immutable after construction.
type Options struct {
	// Mode selects bond- or site-controlled percolation.
	Mode cluster.Mode
	// AccessLimited restricts invasion to clusters connected to the
	// inlets. False gives ordinary percolation in the traditional sense.
	AccessLimited bool
	// Ctx is checked once per threshold during Run; nil means Background.
	Ctx context.Context
}

// DefaultOptions returns bond-mode, access-limited percolation — the
// usual drainage configuration.
func DefaultOptions() Options {
	return Options{
		Mode:          cluster.Bond,
		AccessLimited: true,
		Ctx:           nil,
	}
}

// Occupancy holds per-site and per-bond phase occupancy as 1.0/0.0
// floats, ready to be stored under phase.Occupancy.
type Occupancy struct {
	Sites []float64
	Bonds []float64
}

// AnyBonds reports whether at least one bond is occupied. The
// relative-permeability orchestrator uses this to detect degenerate
// saturation points.
func (o Occupancy) AnyBonds() bool {
	for _, v := range o.Bonds {
		if v > 0 {
			return true
		}
	}
	return false
}

// PcCurve is a capillary pressure curve: applied pressures (ascending,
// with a synthetic 0 floor) and the invading-phase saturation reached at
// each.
type PcCurve struct {
	Pressures   []float64
	Saturations []float64
}
