package stokes

import (
	"context"
	"errors"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrNoBC indicates Run was called with no boundary sites set.
	ErrNoBC = errors.New("stokes: no boundary conditions set")
	// ErrNotConverged indicates the iterative solve exhausted MaxIter.
	ErrNotConverged = errors.New("stokes: solver failed to converge")
	// ErrNotSolved indicates a field query before a successful Run.
	ErrNotSolved = errors.New("stokes: system has not been solved")
	// ErrNoGradient indicates equal inlet and outlet mean pressures.
	ErrNoGradient = errors.New("stokes: no pressure gradient between inlets and outlets")
)

// Solver is the flow-solve contract consumed by the relative-permeability
// orchestrator. Implementations hold a conductance snapshot taken at
// construction; a solve is configured, run once, queried, and discarded.
type Solver interface {
	// SetValueBC fixes the pressure of the given sites.
	SetValueBC(sites []int, value float64) error
	// Run solves the system; blocking, cancellable through ctx.
	Run(ctx context.Context) error
	// EffectivePermeability applies Darcy's law between the two site sets.
	EffectivePermeability(inlets, outlets []int) (float64, error)
	// Rate returns the net volumetric flow out of the given site set.
	Rate(sites []int) (float64, error)
}

// Options configures a StokesFlow solve.
type Options struct {
	// Tol is the relative residual tolerance. Defaults to 1e-9.
	Tol float64
	// MaxIter caps CG iterations. Defaults to 10·Np.
	MaxIter int
	// Length and Area are the domain depth and cross-section entering
	// Darcy's law. Both default to 1 (permeability in network units).
	Length float64
	Area   float64
}

// DefaultOptions returns production-safe defaults; zero fields in a
// caller-built Options resolve to the same values.
func DefaultOptions() Options {
	return Options{
		Tol:     1e-9,
		MaxIter: 0, // resolved to 10·Np at Run
		Length:  1,
		Area:    1,
	}
}

// normalize resolves zero fields to their defaults.
func (o *Options) normalize(np int) {
	if o.Tol <= 0 {
		o.Tol = 1e-9
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 10 * np
	}
	if o.Length <= 0 {
		o.Length = 1
	}
	if o.Area <= 0 {
		o.Area = 1
	}
}
