package stokes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/phase"
	"github.com/katalvlaran/poreflow/stokes"
)

// chain builds a 4-site series path with uniform bond conductance g.
func chain(t *testing.T, g float64) *phase.Phase {
	t.Helper()
	net, err := network.New("chain", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	ph := phase.New(net, "water")
	require.NoError(t, ph.Fill(phase.OnBonds, phase.HydraulicConductance, g))
	return ph
}

// TestRun_SeriesChain solves the textbook series case: three equal
// conductances g in series give total conductance g/3, and the interior
// pressures interpolate linearly.
func TestRun_SeriesChain(t *testing.T) {
	ph := chain(t, 3.0)
	sf, err := stokes.New(ph, phase.HydraulicConductance, stokes.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, sf.SetValueBC([]int{0}, 1))
	require.NoError(t, sf.SetValueBC([]int{3}, 0))
	require.NoError(t, sf.Run(context.Background()))

	p, err := sf.Pressures()
	require.NoError(t, err)
	require.InDelta(t, 2.0/3.0, p[1], 1e-8)
	require.InDelta(t, 1.0/3.0, p[2], 1e-8)

	q, err := sf.Rate([]int{0})
	require.NoError(t, err)
	require.InDelta(t, 1.0, q, 1e-8) // g/3 · ΔP = 3/3 · 1

	k, err := sf.EffectivePermeability([]int{0}, []int{3})
	require.NoError(t, err)
	require.InDelta(t, 1.0, k, 1e-8) // μ=L=A=1
}

// TestRun_Guards covers missing conductance, missing BC, and queries
// before a solve.
func TestRun_Guards(t *testing.T) {
	ph := chain(t, 1.0)

	_, err := stokes.New(ph, phase.ConduitConductance, stokes.DefaultOptions())
	require.ErrorIs(t, err, phase.ErrMissingProperty)

	sf, err := stokes.New(ph, phase.HydraulicConductance, stokes.DefaultOptions())
	require.NoError(t, err)
	require.ErrorIs(t, sf.Run(context.Background()), stokes.ErrNoBC)

	_, err = sf.Pressures()
	require.ErrorIs(t, err, stokes.ErrNotSolved)
	_, err = sf.Rate([]int{0})
	require.ErrorIs(t, err, stokes.ErrNotSolved)
}

// TestRun_NotConverged forces iteration exhaustion with MaxIter=1.
func TestRun_NotConverged(t *testing.T) {
	ph := chain(t, 1.0)
	opts := stokes.DefaultOptions()
	opts.MaxIter = 1
	sf, err := stokes.New(ph, phase.HydraulicConductance, opts)
	require.NoError(t, err)
	require.NoError(t, sf.SetValueBC([]int{0}, 1))
	require.NoError(t, sf.SetValueBC([]int{3}, 0))
	require.ErrorIs(t, sf.Run(context.Background()), stokes.ErrNotConverged)
}

// TestEffectivePermeability_NoGradient: equal BC values leave ΔP = 0.
func TestEffectivePermeability_NoGradient(t *testing.T) {
	ph := chain(t, 1.0)
	sf, err := stokes.New(ph, phase.HydraulicConductance, stokes.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, sf.SetValueBC([]int{0, 3}, 1))
	require.NoError(t, sf.Run(context.Background()))

	_, err = sf.EffectivePermeability([]int{0}, []int{3})
	require.ErrorIs(t, err, stokes.ErrNoGradient)
}

// TestRun_Viscosity: doubling viscosity doubles the reported
// permeability for the same flow field.
func TestRun_Viscosity(t *testing.T) {
	ph := chain(t, 3.0)
	require.NoError(t, ph.Fill(phase.OnSites, phase.Viscosity, 2.0))
	sf, err := stokes.New(ph, phase.HydraulicConductance, stokes.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, sf.SetValueBC([]int{0}, 1))
	require.NoError(t, sf.SetValueBC([]int{3}, 0))
	require.NoError(t, sf.Run(context.Background()))

	k, err := sf.EffectivePermeability([]int{0}, []int{3})
	require.NoError(t, err)
	require.InDelta(t, 2.0, k, 1e-8)
}

// TestRun_CubicLattice sanity-checks a 3-D solve: uniform conductance,
// opposite faces at 1/0, all interior pressures strictly inside (0,1).
func TestRun_CubicLattice(t *testing.T) {
	net, err := network.Cubic("cube", 4, 4, 4, network.DefaultCubicOptions())
	require.NoError(t, err)
	ph := phase.New(net, "water")
	require.NoError(t, ph.Fill(phase.OnBonds, phase.HydraulicConductance, 1.0))

	left, err := net.SitesWithLabel(network.LabelLeft)
	require.NoError(t, err)
	right, err := net.SitesWithLabel(network.LabelRight)
	require.NoError(t, err)

	sf, err := stokes.New(ph, phase.HydraulicConductance, stokes.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, sf.SetValueBC(left, 1))
	require.NoError(t, sf.SetValueBC(right, 0))
	require.NoError(t, sf.Run(context.Background()))

	p, err := sf.Pressures()
	require.NoError(t, err)
	onBoundary := make(map[int]bool)
	for _, s := range append(left, right...) {
		onBoundary[s] = true
	}
	for s, v := range p {
		if !onBoundary[s] {
			require.Greater(t, v, 0.0, "site %d", s)
			require.Less(t, v, 1.0, "site %d", s)
		}
	}

	// Flow in equals flow out.
	qin, err := sf.Rate(left)
	require.NoError(t, err)
	qout, err := sf.Rate(right)
	require.NoError(t, err)
	require.InDelta(t, qin, -qout, 1e-7)
}
