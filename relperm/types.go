package relperm

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/phase"
	"github.com/katalvlaran/poreflow/physics"
	"github.com/katalvlaran/poreflow/stokes"
)

var (
	// ErrNilInput signals a nil network, phase, or solver factory.
	ErrNilInput = errors.New("relperm: nil network, phase, or solver factory")
	// ErrPhaseNetwork signals a phase bound to a different network.
	ErrPhaseNetwork = errors.New("relperm: phase bound to a different network")
	// ErrBadAxis signals an axis byte outside 'x', 'y', 'z'.
	ErrBadAxis = errors.New("relperm: axis must be 'x', 'y', or 'z'")
	// ErrBadPoints signals a saturation point count below two.
	ErrBadPoints = errors.New("relperm: need at least two saturation points")
	// ErrNotRun guards result accessors before a completed Run.
	ErrNotRun = errors.New("relperm: Run has not completed")
	// ErrDegenerateSaturation marks a saturation target at which the
	// non-wetting phase occupies no bonds, so it carries no flow.
	ErrDegenerateSaturation = errors.New("relperm: no invaded bonds at this saturation")
)

// Axis bytes accepted in an AxisPair.
const (
	AxisX byte = 'x'
	AxisY byte = 'y'
	AxisZ byte = 'z'
)

// AxisPair names one sweep: invade along Invasion, measure flow along
// Flow. The two axes may differ, giving cross-directional curves.
type AxisPair struct {
	Invasion byte
	Flow     byte
}

// String implements fmt.Stringer, e.g. "x→y".
func (p AxisPair) String() string {
	return fmt.Sprintf("%c→%c", p.Invasion, p.Flow)
}

// faceLabels maps an axis byte to its inlet/outlet face labels on a
// cubic network.
func faceLabels(axis byte) (in, out string, err error) {
	switch axis {
	case AxisX:
		return network.LabelLeft, network.LabelRight, nil
	case AxisY:
		return network.LabelFront, network.LabelBack, nil
	case AxisZ:
		return network.LabelTop, network.LabelBottom, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrBadAxis, axis)
	}
}

// SolverFactory builds a fresh flow solver over the phase's bond
// property of the given kind. The simulator discards each solver after
// extracting its effective permeability, so implementations may be
// single-use.
type SolverFactory func(ph *phase.Phase, conductance phase.Kind) (stokes.Solver, error)

// Options configures a relative-permeability sweep.
type Options struct {
	// Pairs lists the invasion/flow axis pairs to sweep, in order.
	// Defaults to a single x→x pair.
	Pairs []AxisPair
	// SatPoints is the number of evenly spaced non-wetting saturation
	// targets in [0,1]. Defaults to 10; must be ≥ 2.
	SatPoints int
	// BoundaryStride subsamples the invasion inlet face, taking every
	// stride-th site. Defaults to 2; 1 keeps the whole face.
	BoundaryStride int
	// Policy gates multiphase conduits; see physics.ConduitPolicy.
	// Defaults to physics.Strict.
	Policy physics.ConduitPolicy
	// Factor damps closed conduits instead of zeroing them. Defaults to
	// physics.DefaultConduitFactor.
	Factor float64
	// Solver is handed to solver construction via normalize only when
	// the caller's factory consults it; the built-in StokesFactory does.
	Solver stokes.Options
	// Ctx cancels the sweep between solves. Nil means context.Background.
	Ctx context.Context
}

// DefaultOptions returns production-safe defaults; zero fields in a
// hand-built Options are normalized the same way.
func DefaultOptions() Options {
	return Options{
		Pairs:          []AxisPair{{Invasion: AxisX, Flow: AxisX}},
		SatPoints:      10,
		BoundaryStride: 2,
		Policy:         physics.Strict,
		Factor:         physics.DefaultConduitFactor,
		Solver:         stokes.DefaultOptions(),
	}
}

func (o *Options) normalize() error {
	if len(o.Pairs) == 0 {
		o.Pairs = []AxisPair{{Invasion: AxisX, Flow: AxisX}}
	}
	for _, p := range o.Pairs {
		if _, _, err := faceLabels(p.Invasion); err != nil {
			return err
		}
		if _, _, err := faceLabels(p.Flow); err != nil {
			return err
		}
	}
	if o.SatPoints == 0 {
		o.SatPoints = 10
	}
	if o.SatPoints < 2 {
		return fmt.Errorf("%w: got %d", ErrBadPoints, o.SatPoints)
	}
	if o.BoundaryStride < 1 {
		o.BoundaryStride = 2
	}
	if o.Factor <= 0 {
		o.Factor = physics.DefaultConduitFactor
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	return nil
}

// Curve is one axis pair's relative-permeability result. Saturation
// targets that fail to solve are absent, so the slices may be shorter
// than Options.SatPoints; the three slices always share a length.
type Curve struct {
	Pair AxisPair
	// Saturations are the non-wetting saturation targets, ascending.
	Saturations []float64
	// KrWetting and KrNonWetting are Keff/Kbase per saturation.
	KrWetting    []float64
	KrNonWetting []float64
	// KBaseWetting and KBaseNonWetting are the single-phase baselines.
	KBaseWetting    float64
	KBaseNonWetting float64
}

// clone deep-copies a Curve so accessors never alias internal state.
func (c Curve) clone() Curve {
	c.Saturations = append([]float64(nil), c.Saturations...)
	c.KrWetting = append([]float64(nil), c.KrWetting...)
	c.KrNonWetting = append([]float64(nil), c.KrNonWetting...)
	return c
}
