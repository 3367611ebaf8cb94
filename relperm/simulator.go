package relperm

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/percolation"
	"github.com/katalvlaran/poreflow/phase"
	"github.com/katalvlaran/poreflow/physics"
	"github.com/katalvlaran/poreflow/stokes"
)

// Simulator runs drainage relative-permeability sweeps over a network
// shared by a wetting and a non-wetting phase. Not safe for concurrent
// use.
type Simulator struct {
	net     *network.Network
	wetting *phase.Phase
	nonwet  *phase.Phase
	factory SolverFactory
	opts    Options

	curves []Curve
	ran    bool
}

// StokesFactory adapts stokes.New into a SolverFactory with fixed
// solver options.
func StokesFactory(opts stokes.Options) SolverFactory {
	return func(ph *phase.Phase, conductance phase.Kind) (stokes.Solver, error) {
		return stokes.New(ph, conductance, opts)
	}
}

// NewSimulator validates the inputs and binds them. Both phases must be
// bound to net; the non-wetting phase must carry bond entry pressures
// and both must carry bond hydraulic conductances before Run.
func NewSimulator(net *network.Network, wetting, nonwet *phase.Phase,
	factory SolverFactory, opts Options) (*Simulator, error) {
	if net == nil || wetting == nil || nonwet == nil || factory == nil {
		return nil, ErrNilInput
	}
	if wetting.Network() != net || nonwet.Network() != net {
		return nil, ErrPhaseNetwork
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	return &Simulator{
		net:     net,
		wetting: wetting,
		nonwet:  nonwet,
		factory: factory,
		opts:    opts,
	}, nil
}

// Run executes every configured axis pair in order: single-phase
// baselines, one invasion-percolation drainage along the invasion axis,
// then a multiphase flow solve per phase at each saturation target.
// A solver failure at one saturation drops only that point; baseline
// failures abort the pair.
// Complexity: O(pairs · satPoints · CG) with CG the flow-solve cost.
func (s *Simulator) Run() error {
	ctx := s.opts.Ctx
	s.curves = s.curves[:0]
	s.ran = false
	for _, pair := range s.opts.Pairs {
		c, err := s.runPair(ctx, pair)
		if err != nil {
			return fmt.Errorf("relperm: pair %v: %w", pair, err)
		}
		s.curves = append(s.curves, c)
	}
	s.ran = true
	return nil
}

// Curves returns deep copies of the per-pair results, in sweep order.
func (s *Simulator) Curves() ([]Curve, error) {
	if !s.ran {
		return nil, ErrNotRun
	}
	out := make([]Curve, len(s.curves))
	for i, c := range s.curves {
		out[i] = c.clone()
	}
	return out, nil
}

func (s *Simulator) runPair(ctx context.Context, pair AxisPair) (Curve, error) {
	invLabel, _, err := faceLabels(pair.Invasion)
	if err != nil {
		return Curve{}, err
	}
	flowInLabel, flowOutLabel, err := faceLabels(pair.Flow)
	if err != nil {
		return Curve{}, err
	}
	invFace, err := s.net.SitesWithLabel(invLabel)
	if err != nil {
		return Curve{}, err
	}
	flowIn, err := s.net.SitesWithLabel(flowInLabel)
	if err != nil {
		return Curve{}, err
	}
	flowOut, err := s.net.SitesWithLabel(flowOutLabel)
	if err != nil {
		return Curve{}, err
	}
	inlets := subsample(invFace, s.opts.BoundaryStride)

	curve := Curve{Pair: pair}
	curve.KBaseWetting, err = s.baseline(ctx, s.wetting, flowIn, flowOut)
	if err != nil {
		return Curve{}, fmt.Errorf("wetting baseline: %w", err)
	}
	curve.KBaseNonWetting, err = s.baseline(ctx, s.nonwet, flowIn, flowOut)
	if err != nil {
		return Curve{}, fmt.Errorf("non-wetting baseline: %w", err)
	}

	inv := percolation.NewInvasion(s.net)
	if err = inv.Setup(s.nonwet); err != nil {
		return Curve{}, err
	}
	if err = inv.SetInlets(inlets); err != nil {
		return Curve{}, err
	}
	if err = inv.Run(); err != nil {
		return Curve{}, err
	}

	conns := s.net.Connections()
	for i := 0; i < s.opts.SatPoints; i++ {
		target := float64(i) / float64(s.opts.SatPoints-1)
		occ, err := inv.ResultsBySaturation(target)
		if err != nil {
			return Curve{}, err
		}

		krw, errW := s.pointKr(ctx, s.wetting, conns, invert(occ), flowIn, flowOut, curve.KBaseWetting)
		krnw, errNW := s.pointKr(ctx, s.nonwet, conns, occ, flowIn, flowOut, curve.KBaseNonWetting)
		// A phase occupying no bonds carries no flow.
		if errors.Is(errW, ErrDegenerateSaturation) {
			krw, errW = 0, nil
		}
		if errors.Is(errNW, ErrDegenerateSaturation) {
			krnw, errNW = 0, nil
		}
		if errW != nil || errNW != nil {
			continue // solver failure drops this saturation only
		}
		curve.Saturations = append(curve.Saturations, target)
		curve.KrWetting = append(curve.KrWetting, krw)
		curve.KrNonWetting = append(curve.KrNonWetting, krnw)
	}
	return curve, nil
}

// baseline solves the single-phase flow problem on the bond hydraulic
// conductances and returns the effective permeability.
func (s *Simulator) baseline(ctx context.Context, ph *phase.Phase,
	flowIn, flowOut []int) (float64, error) {
	sol, err := s.factory(ph, phase.HydraulicConductance)
	if err != nil {
		return 0, err
	}
	return s.solve(ctx, sol, flowIn, flowOut)
}

// pointKr regenerates the phase's conduit conductances from the given
// occupancy, solves the flow problem on them, and returns Keff/kbase.
// A fully unoccupied bond set short-circuits with
// ErrDegenerateSaturation before any solve.
func (s *Simulator) pointKr(ctx context.Context, ph *phase.Phase,
	conns [][2]int, occ percolation.Occupancy,
	flowIn, flowOut []int, kbase float64) (float64, error) {
	if !occ.AnyBonds() {
		return 0, ErrDegenerateSaturation
	}
	g, err := ph.Get(phase.OnBonds, phase.HydraulicConductance)
	if err != nil {
		return 0, err
	}
	cc, err := physics.ConduitConductance(conns, g, occ.Sites, occ.Bonds,
		s.opts.Policy, s.opts.Factor)
	if err != nil {
		return 0, err
	}
	if err = ph.Set(phase.OnBonds, phase.ConduitConductance, cc); err != nil {
		return 0, err
	}
	if err = ph.Set(phase.OnSites, phase.Occupancy, occ.Sites); err != nil {
		return 0, err
	}

	sol, err := s.factory(ph, phase.ConduitConductance)
	if err != nil {
		return 0, err
	}
	keff, err := s.solve(ctx, sol, flowIn, flowOut)
	if err != nil {
		return 0, err
	}
	return keff / kbase, nil
}

// solve applies the 1/0 pressure boundary, runs the solver, and returns
// the effective permeability.
func (s *Simulator) solve(ctx context.Context, sol stokes.Solver,
	flowIn, flowOut []int) (float64, error) {
	if err := sol.SetValueBC(flowIn, 1); err != nil {
		return 0, err
	}
	if err := sol.SetValueBC(flowOut, 0); err != nil {
		return 0, err
	}
	if err := sol.Run(ctx); err != nil {
		return 0, err
	}
	return sol.EffectivePermeability(flowIn, flowOut)
}

// invert flips an occupancy: the wetting phase fills what the
// non-wetting phase left.
func invert(occ percolation.Occupancy) percolation.Occupancy {
	out := percolation.Occupancy{
		Sites: make([]float64, len(occ.Sites)),
		Bonds: make([]float64, len(occ.Bonds)),
	}
	for i, v := range occ.Sites {
		out.Sites[i] = 1 - v
	}
	for i, v := range occ.Bonds {
		out.Bonds[i] = 1 - v
	}
	return out
}

// subsample keeps every stride-th element, starting from the first.
func subsample(sites []int, stride int) []int {
	if stride <= 1 {
		return append([]int(nil), sites...)
	}
	out := make([]int, 0, (len(sites)+stride-1)/stride)
	for i := 0; i < len(sites); i += stride {
		out = append(out, sites[i])
	}
	return out
}
