package percolation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/percolation"
	"github.com/katalvlaran/poreflow/phase"
)

// invPath builds a 4-site path with bond entry pressures {3,1,2} and an
// invasion engine fed from site 0.
func invPath(t *testing.T) *percolation.Invasion {
	t.Helper()
	net, err := network.New("path4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	ph := phase.New(net, "nwp")
	require.NoError(t, ph.Set(phase.OnBonds, phase.EntryPressure, []float64{3, 1, 2}))

	inv := percolation.NewInvasion(net)
	require.NoError(t, inv.Setup(ph))
	require.NoError(t, inv.SetInlets([]int{0}))
	return inv
}

// TestInvasion_Order: invasion follows accessibility, not global pressure
// order — the expensive bond 0 must fall before the cheap bond 1 becomes
// reachable.
func TestInvasion_Order(t *testing.T) {
	inv := invPath(t)
	require.NoError(t, inv.Run())

	require.Equal(t, []int{1, 2, 3}, inv.BondInvasionSequences())
	require.Equal(t, []int{0, 1, 2, 3}, inv.SiteInvasionSequences())
}

// TestInvasion_Guards covers the setup and inlet preconditions.
func TestInvasion_Guards(t *testing.T) {
	net, err := network.New("p", 2, [][2]int{{0, 1}})
	require.NoError(t, err)

	inv := percolation.NewInvasion(net)
	require.ErrorIs(t, inv.Run(), percolation.ErrNotConfigured)

	ph := phase.New(net, "nwp")
	require.NoError(t, ph.Fill(phase.OnBonds, phase.EntryPressure, 1.0))
	require.NoError(t, inv.Setup(ph))
	require.ErrorIs(t, inv.Run(), percolation.ErrNoInlets)

	_, err = inv.ResultsBySaturation(0.5)
	require.ErrorIs(t, err, percolation.ErrNotRun)
}

// TestInvasion_CheapestFirst: from a hub site, frontier bonds fall in
// ascending entry-pressure order.
func TestInvasion_CheapestFirst(t *testing.T) {
	// Star: center 0 connected to 1,2,3 with pressures 5, 1, 3.
	net, err := network.New("star", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	require.NoError(t, err)
	ph := phase.New(net, "nwp")
	require.NoError(t, ph.Set(phase.OnBonds, phase.EntryPressure, []float64{5, 1, 3}))

	inv := percolation.NewInvasion(net)
	require.NoError(t, inv.Setup(ph))
	require.NoError(t, inv.SetInlets([]int{0}))
	require.NoError(t, inv.Run())

	require.Equal(t, []int{3, 1, 2}, inv.BondInvasionSequences())
}

// TestInvasion_ResultsBySaturation checks the volume-prefix cutoff with
// default weights (unit sites, zero bonds).
func TestInvasion_ResultsBySaturation(t *testing.T) {
	inv := invPath(t)
	require.NoError(t, inv.Run())

	// Total volume 4 (one per site). Target 0.5 → 2 sites fit: the inlet
	// (step 0) and the site joined at step 1.
	occ, err := inv.ResultsBySaturation(0.5)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 0, 0}, occ.Sites)
	require.Equal(t, []float64{1, 0, 0}, occ.Bonds)

	// Saturation 0 invades nothing: the degenerate point.
	occ, err = inv.ResultsBySaturation(0)
	require.NoError(t, err)
	require.False(t, occ.AnyBonds())

	// Saturation 1 invades everything reachable.
	occ, err = inv.ResultsBySaturation(1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1}, occ.Sites)
	require.Equal(t, []float64{1, 1, 1}, occ.Bonds)
}

// TestInvasion_ResultsByPressure checks the pressure-threshold query.
func TestInvasion_ResultsByPressure(t *testing.T) {
	inv := invPath(t)
	require.NoError(t, inv.Run())

	// Bond 0 carries pressure 3; bonds 1 and 2 invade behind it at 1 and 2.
	occ := inv.Results(2.5)
	require.Equal(t, []float64{0, 1, 1}, occ.Bonds)
}

// TestInvasion_Monotone: occupancy grows with the saturation target.
func TestInvasion_Monotone(t *testing.T) {
	inv := invPath(t)
	require.NoError(t, inv.Run())

	prev := 0.0
	for _, snw := range []float64{0, 0.25, 0.5, 0.75, 1} {
		occ, err := inv.ResultsBySaturation(snw)
		require.NoError(t, err)
		var count float64
		for _, v := range occ.Sites {
			count += v
		}
		require.GreaterOrEqual(t, count, prev, "snw=%g", snw)
		prev = count
	}
}
