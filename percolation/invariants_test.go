package percolation_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/percolation"
	"github.com/katalvlaran/poreflow/phase"
)

// sweepPoints is a fixed ascending sweep wide enough to cover the
// generated entry-pressure range.
var sweepPoints = []float64{2.5, 5.0, 7.5, 10.5}

// runLattice runs an access-limited bond sweep on a 3×3×2 lattice
// (18 sites, 33 bonds) with the given bond entry pressures.
func runLattice(t *testing.T, entries []float64) *percolation.Ordinary {
	t.Helper()
	net, err := network.Cubic("lat", 3, 3, 2, network.DefaultCubicOptions())
	require.NoError(t, err)
	ph := phase.New(net, "nwp")
	require.NoError(t, ph.Set(phase.OnBonds, phase.EntryPressure, entries))

	eng, err := percolation.NewOrdinary(net, percolation.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, eng.Setup(ph))
	left, err := net.SitesWithLabel(network.LabelLeft)
	require.NoError(t, err)
	require.NoError(t, eng.SetInlets(left))
	require.NoError(t, eng.Run(sweepPoints))
	return eng
}

// TestSweepInvariants checks the core percolation invariants over
// random entry-pressure fields:
//
//   - every finite invasion pressure is one of the sweep points;
//   - invasion_sequence is an order-preserving rank of invasion_pressure
//     (ties share a rank, uninvaded elements keep -1);
//   - Results is monotone in the applied pressure.
func TestSweepInvariants(t *testing.T) {
	const nt = 33 // bonds in a 3×3×2 cubic lattice

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(1905) // deterministic runs
	properties := gopter.NewProperties(parameters)

	entryGen := gen.SliceOfN(nt, gen.Float64Range(0.1, 10.0))

	properties.Property("finite pressures come from the sweep", prop.ForAll(
		func(entries []float64) bool {
			eng := runLattice(t, entries)
			for _, arr := range [][]float64{eng.SiteInvasionPressures(), eng.BondInvasionPressures()} {
				for _, p := range arr {
					if math.IsInf(p, 1) {
						continue
					}
					found := false
					for _, pt := range sweepPoints {
						if p == pt {
							found = true
							break
						}
					}
					if !found {
						return false
					}
				}
			}
			return true
		},
		entryGen,
	))

	properties.Property("sequence ranks pressure", prop.ForAll(
		func(entries []float64) bool {
			eng := runLattice(t, entries)
			press := append(eng.SiteInvasionPressures(), eng.BondInvasionPressures()...)
			seq := append(eng.SiteInvasionSequences(), eng.BondInvasionSequences()...)
			for i := range press {
				if math.IsInf(press[i], 1) != (seq[i] == -1) {
					return false // -1 iff never invaded
				}
				for j := range press {
					if math.IsInf(press[i], 1) || math.IsInf(press[j], 1) {
						continue
					}
					if press[i] < press[j] && seq[i] >= seq[j] {
						return false
					}
					if press[i] == press[j] && seq[i] != seq[j] {
						return false
					}
				}
			}
			return true
		},
		entryGen,
	))

	properties.Property("occupancy is monotone in pressure", prop.ForAll(
		func(entries []float64) bool {
			eng := runLattice(t, entries)
			lo := eng.Results(5.0)
			hi := eng.Results(7.5)
			for s := range lo.Sites {
				if lo.Sites[s] == 1.0 && hi.Sites[s] != 1.0 {
					return false
				}
			}
			for b := range lo.Bonds {
				if lo.Bonds[b] == 1.0 && hi.Bonds[b] != 1.0 {
					return false
				}
			}
			return true
		},
		entryGen,
	))

	properties.TestingRun(t)
}
