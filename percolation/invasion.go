package percolation

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/phase"
)

// Invasion is the frontier-growth percolation engine: starting from the
// inlet sites, the accessible bond with the lowest entry pressure is
// invaded next, together with its uninvaded far site, until the whole
// connected network is filled. Each invaded element records a strictly
// increasing invasion sequence and the entry pressure of the bond that
// admitted it.
//
// Invasion is always access-limited by construction and always
// bond-controlled (entry pressures live on bonds).
type Invasion struct {
	net    *network.Network
	np, nt int
	conns  [][2]int

	entry   []float64
	siteVol []float64
	bondVol []float64

	inlets []bool

	pInv, tInv []float64
	pSeq, tSeq []int
	pRes, tRes []bool

	configured bool
	ran        bool
}

// NewInvasion creates an invasion engine over net.
// Complexity: O(Np + Nt).
func NewInvasion(net *network.Network) *Invasion {
	v := &Invasion{
		net:   net,
		np:    net.NumSites(),
		nt:    net.NumBonds(),
		conns: net.Connections(),
	}
	v.Reset()
	return v
}

// Setup binds bond entry pressures (phase.EntryPressure on bonds) and
// optional volumes from the phase collaborator. Fails with a wrapped
// ErrMissingProperty if entry pressures are absent.
func (v *Invasion) Setup(ph *phase.Phase) error {
	entry, err := ph.Get(phase.OnBonds, phase.EntryPressure)
	if err != nil {
		return fmt.Errorf("percolation: invasion setup on network %q: %w", v.net.Name(), err)
	}
	v.entry = append([]float64(nil), entry...)
	v.siteVol, v.bondVol = nil, nil
	if ph.Has(phase.OnSites, phase.Volume) {
		vol, _ := ph.Get(phase.OnSites, phase.Volume)
		v.siteVol = append([]float64(nil), vol...)
	}
	if ph.Has(phase.OnBonds, phase.Volume) {
		vol, _ := ph.Get(phase.OnBonds, phase.Volume)
		v.bondVol = append([]float64(nil), vol...)
	}
	v.configured = true
	return nil
}

// Reset clears invasion state; the Setup binding survives.
func (v *Invasion) Reset() {
	v.pInv = filled(v.np, math.Inf(1))
	v.tInv = filled(v.nt, math.Inf(1))
	v.pSeq = filledInt(v.np, -1)
	v.tSeq = filledInt(v.nt, -1)
	v.inlets = make([]bool, v.np)
	v.pRes = make([]bool, v.np)
	v.tRes = make([]bool, v.nt)
	v.ran = false
}

// SetInlets marks invasion entry sites, merging with any already set.
func (v *Invasion) SetInlets(sites []int) error {
	for _, s := range sites {
		if s < 0 || s >= v.np {
			return fmt.Errorf("%w: inlet %d (Np=%d)", network.ErrSiteIndex, s, v.np)
		}
		v.inlets[s] = true
	}
	return nil
}

// SetResidual marks elements already holding invading phase; they report
// occupancy 1.0 from every results query. Either slice may be nil.
func (v *Invasion) SetResidual(sites, bonds []int) error {
	for _, s := range sites {
		if s < 0 || s >= v.np {
			return fmt.Errorf("%w: residual site %d (Np=%d)", network.ErrSiteIndex, s, v.np)
		}
		v.pRes[s] = true
	}
	for _, t := range bonds {
		if t < 0 || t >= v.nt {
			return fmt.Errorf("%w: residual bond %d (Nt=%d)", network.ErrBondIndex, t, v.nt)
		}
		v.tRes[t] = true
	}
	return nil
}

// Run performs the invasion. Inlet sites are invaded at step 0 with
// pressure 0; thereafter the cheapest frontier bond is popped, invaded,
// and its uninvaded far site joins at the same step, pushing new
// frontier bonds. Ties between equal entry pressures break on the lower
// bond id, keeping the order deterministic.
//
// Complexity: O((Np + Nt) · log Nt).
func (v *Invasion) Run() error {
	if !v.configured {
		return fmt.Errorf("%w (network %q)", ErrNotConfigured, v.net.Name())
	}
	inletIDs := maskIDs(v.inlets)
	if len(inletIDs) == 0 {
		return fmt.Errorf("%w (network %q)", ErrNoInlets, v.net.Name())
	}

	// Clear any previous run but keep configuration and inlets.
	v.pInv = filled(v.np, math.Inf(1))
	v.tInv = filled(v.nt, math.Inf(1))
	v.pSeq = filledInt(v.np, -1)
	v.tSeq = filledInt(v.nt, -1)

	h := &bondHeap{}
	heap.Init(h)
	push := func(s int) {
		bonds, _ := v.net.NeighborBonds(s)
		for _, t := range bonds {
			if v.tSeq[t] == -1 {
				heap.Push(h, frontierBond{pc: v.entry[t], bond: t})
			}
		}
	}
	for _, s := range inletIDs {
		v.pSeq[s] = 0
		v.pInv[s] = 0
		push(s)
	}

	step := 0
	for h.Len() > 0 {
		fb := heap.Pop(h).(frontierBond)
		if v.tSeq[fb.bond] != -1 {
			continue // already invaded via a cheaper route
		}
		step++
		v.tSeq[fb.bond] = step
		v.tInv[fb.bond] = fb.pc
		c := v.conns[fb.bond]
		for _, s := range []int{c[0], c[1]} {
			if v.pSeq[s] == -1 {
				v.pSeq[s] = step
				v.pInv[s] = fb.pc
				push(s)
			}
		}
	}
	v.ran = true
	return nil
}

// Results returns 1.0/0.0 occupancy for every element invaded at or
// below the applied pressure; residual elements are always occupied.
func (v *Invasion) Results(pressure float64) Occupancy {
	occ := Occupancy{
		Sites: make([]float64, v.np),
		Bonds: make([]float64, v.nt),
	}
	for s, p := range v.pInv {
		if p <= pressure || v.pRes[s] {
			occ.Sites[s] = 1.0
		}
	}
	for t, p := range v.tInv {
		if p <= pressure || v.tRes[t] {
			occ.Bonds[t] = 1.0
		}
	}
	return occ
}

// ResultsBySaturation returns the occupancy of the longest invasion
// prefix whose cumulative volume fraction does not exceed the target
// non-wetting saturation. Steps are included whole, so ties invaded in
// one step fill together. Without bound volumes, every site weighs 1 and
// every bond 0. Requires a completed Run.
// Complexity: O(Np + Nt).
func (v *Invasion) ResultsBySaturation(snw float64) (Occupancy, error) {
	if !v.ran {
		return Occupancy{}, ErrNotRun
	}
	siteVol := v.siteVol
	if siteVol == nil {
		siteVol = filled(v.np, 1)
	}
	bondVol := v.bondVol
	if bondVol == nil {
		bondVol = make([]float64, v.nt)
	}
	var total float64
	for _, x := range siteVol {
		total += x
	}
	for _, x := range bondVol {
		total += x
	}

	// Per-step invaded volume, then the largest step whose cumulative
	// volume stays within the target.
	maxStep := 0
	for _, q := range v.pSeq {
		if q > maxStep {
			maxStep = q
		}
	}
	for _, q := range v.tSeq {
		if q > maxStep {
			maxStep = q
		}
	}
	volAt := make([]float64, maxStep+1)
	for s, q := range v.pSeq {
		if q >= 0 {
			volAt[q] += siteVol[s]
		}
	}
	for t, q := range v.tSeq {
		if q >= 0 {
			volAt[q] += bondVol[t]
		}
	}
	target := snw * total
	cutoff := -1
	var cum float64
	const eps = 1e-12
	for q := 0; q <= maxStep; q++ {
		if cum+volAt[q] > target+eps {
			break
		}
		cum += volAt[q]
		cutoff = q
	}

	occ := Occupancy{
		Sites: make([]float64, v.np),
		Bonds: make([]float64, v.nt),
	}
	for s, q := range v.pSeq {
		if (q >= 0 && q <= cutoff) || v.pRes[s] {
			occ.Sites[s] = 1.0
		}
	}
	for t, q := range v.tSeq {
		if (q >= 0 && q <= cutoff) || v.tRes[t] {
			occ.Bonds[t] = 1.0
		}
	}
	return occ, nil
}

// SiteInvasionSequences returns a copy of the per-site invasion steps.
func (v *Invasion) SiteInvasionSequences() []int {
	return append([]int(nil), v.pSeq...)
}

// BondInvasionSequences returns a copy of the per-bond invasion steps.
func (v *Invasion) BondInvasionSequences() []int {
	return append([]int(nil), v.tSeq...)
}

// frontierBond is a heap entry: a not-yet-invaded bond reachable from
// the invaded cluster, keyed by entry pressure.
type frontierBond struct {
	pc   float64
	bond int
}

// bondHeap is a min-heap over frontier bonds with deterministic
// tie-breaking on bond id.
type bondHeap []frontierBond

func (h bondHeap) Len() int { return len(h) }

func (h bondHeap) Less(i, j int) bool {
	if h[i].pc != h[j].pc {
		return h[i].pc < h[j].pc
	}
	return h[i].bond < h[j].bond
}

func (h bondHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *bondHeap) Push(x any) { *h = append(*h, x.(frontierBond)) }

func (h *bondHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
