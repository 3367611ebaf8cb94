package percolation

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/poreflow/cluster"
	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/phase"
)

// Ordinary is the threshold-sweep percolation engine. Construct with
// NewOrdinary, bind invasion-order data with Setup, then Run; Reset
// clears invasion state for a repeat run under different inlets.
//
// Not safe for concurrent use: Run mutates invasion state strictly
// sequentially because first-invaded-wins is order-dependent.
type Ordinary struct {
	net  *network.Network
	opts Options

	np, nt int
	conns  [][2]int

	// Bound by Setup: entry pressures on the mode's element type, and
	// optional volumes for saturation weighting.
	entry   []float64
	siteVol []float64
	bondVol []float64

	// Invasion state, owned by this engine.
	pInv, tInv []float64
	pSeq, tSeq []int
	inlets     []bool
	outlets    []bool
	pRes, tRes []bool

	points     []float64
	configured bool
	ran        bool
}

// NewOrdinary creates an engine over net. Returns ErrMode unless
// opts.Mode is cluster.Bond or cluster.Site: the mode is part of the
// immutable settings and must be fixed before anything else.
// Complexity: O(Np + Nt).
func NewOrdinary(net *network.Network, opts Options) (*Ordinary, error) {
	if opts.Mode != cluster.Bond && opts.Mode != cluster.Site {
		return nil, fmt.Errorf("%w: got %v", ErrMode, opts.Mode)
	}
	o := &Ordinary{
		net:   net,
		opts:  opts,
		np:    net.NumSites(),
		nt:    net.NumBonds(),
		conns: net.Connections(),
	}
	o.Reset()
	return o, nil
}

// Setup binds the invasion-order source data from the phase collaborator:
// entry pressures on the mode's element type (phase.EntryPressure), and
// volumes (phase.Volume) when present for both element types. Fails with
// ErrMissingProperty (wrapped, naming phase and kind) if the required
// entry-pressure array is absent.
func (o *Ordinary) Setup(ph *phase.Phase) error {
	elem := phase.OnBonds
	if o.opts.Mode == cluster.Site {
		elem = phase.OnSites
	}
	entry, err := ph.Get(elem, phase.EntryPressure)
	if err != nil {
		return fmt.Errorf("percolation: setup on network %q: %w", o.net.Name(), err)
	}
	o.entry = append([]float64(nil), entry...)

	// Volumes are optional; PercolationData falls back to unit pore /
	// zero throat weighting without them.
	o.siteVol, o.bondVol = nil, nil
	if ph.Has(phase.OnSites, phase.Volume) {
		v, _ := ph.Get(phase.OnSites, phase.Volume)
		o.siteVol = append([]float64(nil), v...)
	}
	if ph.Has(phase.OnBonds, phase.Volume) {
		v, _ := ph.Get(phase.OnBonds, phase.Volume)
		o.bondVol = append([]float64(nil), v...)
	}
	o.configured = true
	return nil
}

// Reset clears the invasion state back to its initial values
// (+Inf pressures, -1 sequences, empty masks). Callable from any state;
// the Setup binding survives so the engine returns to CONFIGURED.
// Complexity: O(Np + Nt).
func (o *Ordinary) Reset() {
	o.pInv = filled(o.np, math.Inf(1))
	o.tInv = filled(o.nt, math.Inf(1))
	o.pSeq = filledInt(o.np, -1)
	o.tSeq = filledInt(o.nt, -1)
	o.inlets = make([]bool, o.np)
	o.outlets = make([]bool, o.np)
	o.pRes = make([]bool, o.np)
	o.tRes = make([]bool, o.nt)
	o.points = nil
	o.ran = false
}

// SetInlets marks the given sites as invasion inlets, merging with any
// already set. Required before Run under access-limited mode.
func (o *Ordinary) SetInlets(sites []int) error {
	return o.setMask(o.inlets, sites, "inlet")
}

// SetOutlets marks the given sites as outlets, used by
// PercolationThreshold and IsPercolating.
func (o *Ordinary) SetOutlets(sites []int) error {
	return o.setMask(o.outlets, sites, "outlet")
}

// SetResidual marks sites and bonds already holding invading phase
// before the sweep. Residual elements report occupancy 1.0 from Results
// at every pressure. Either slice may be nil.
func (o *Ordinary) SetResidual(sites, bonds []int) error {
	if err := o.setMask(o.pRes, sites, "residual site"); err != nil {
		return err
	}
	for _, t := range bonds {
		if t < 0 || t >= o.nt {
			return fmt.Errorf("%w: residual bond %d (Nt=%d)", network.ErrBondIndex, t, o.nt)
		}
		o.tRes[t] = true
	}
	return nil
}

func (o *Ordinary) setMask(mask []bool, sites []int, what string) error {
	for _, s := range sites {
		if s < 0 || s >= o.np {
			return fmt.Errorf("%w: %s %d (Np=%d)", network.ErrSiteIndex, what, s, o.np)
		}
		mask[s] = true
	}
	return nil
}

// Run sweeps the given strictly increasing pressure points. For each
// threshold, ascending: open every element with entry pressure ≤
// threshold, label clusters, drop clusters isolated from the inlets when
// access-limited, and record the threshold on every element whose
// invasion pressure is still infinite and whose label is non-negative.
// After the sweep, invasion sequences are derived as the rank of each
// finite invasion pressure among all finite pressures assigned.
//
// Errors: ErrNotConfigured before Setup; ErrNoInlets when access-limited
// without inlets; ErrBadPoints on an empty or non-increasing sequence;
// the context error if Options.Ctx is canceled mid-sweep.
//
// Complexity: O(len(points) · (Np+Nt) · α(Np)).
func (o *Ordinary) Run(points []float64) error {
	if !o.configured {
		return fmt.Errorf("%w (network %q)", ErrNotConfigured, o.net.Name())
	}
	if len(points) == 0 {
		return fmt.Errorf("%w: no points", ErrBadPoints)
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			return fmt.Errorf("%w: points[%d]=%g, points[%d]=%g",
				ErrBadPoints, i-1, points[i-1], i, points[i])
		}
	}
	var inletIDs []int
	if o.opts.AccessLimited {
		inletIDs = maskIDs(o.inlets)
		if len(inletIDs) == 0 {
			return fmt.Errorf("%w (network %q, access-limited)", ErrNoInlets, o.net.Name())
		}
	}
	ctx := o.opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	open := make([]bool, len(o.entry))
	for _, pc := range points {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i, e := range o.entry {
			open[i] = e <= pc
		}
		var labels cluster.Labels
		var err error
		if o.opts.Mode == cluster.Bond {
			labels, err = cluster.BondPercolation(o.conns, o.np, open)
		} else {
			labels, err = cluster.SitePercolation(o.conns, o.np, open)
		}
		if err != nil {
			return err
		}
		if o.opts.AccessLimited {
			labels, err = cluster.RemoveIsolated(labels, inletIDs)
			if err != nil {
				return err
			}
		}
		// First-invaded-wins: only still-infinite elements take the
		// current threshold.
		for s, id := range labels.Sites {
			if id != cluster.Unlabeled && math.IsInf(o.pInv[s], 1) {
				o.pInv[s] = pc
			}
		}
		for t, id := range labels.Bonds {
			if id != cluster.Unlabeled && math.IsInf(o.tInv[t], 1) {
				o.tInv[t] = pc
			}
		}
	}

	o.pSeq, o.tSeq = rankPressures(o.pInv, o.tInv)
	o.points = append([]float64(nil), points...)
	o.ran = true
	return nil
}

// RunLogSpaced derives num log-spaced pressure points and runs them.
// start/stop <= 0 auto-derive from the bound entry pressures as
// 0.95·min and 1.05·max; the lower end is floored at 1 so the log
// spacing stays defined.
func (o *Ordinary) RunLogSpaced(num int, start, stop float64) error {
	if !o.configured {
		return fmt.Errorf("%w (network %q)", ErrNotConfigured, o.net.Name())
	}
	if num < 1 {
		return fmt.Errorf("%w: num=%d", ErrBadPoints, num)
	}
	lo, hi := minMax(o.entry)
	if start <= 0 {
		start = 0.95 * lo
	}
	if stop <= 0 {
		stop = 1.05 * hi
	}
	if start < 1 {
		start = 1
	}
	if stop <= start {
		return fmt.Errorf("%w: derived range [%g, %g]", ErrBadPoints, start, stop)
	}
	pts := make([]float64, num)
	if num == 1 {
		pts[0] = stop
	} else {
		l0, l1 := math.Log10(start), math.Log10(stop)
		for i := range pts {
			pts[i] = math.Pow(10, l0+(l1-l0)*float64(i)/float64(num-1))
		}
	}
	return o.Run(pts)
}

// PercolationThreshold returns the pressure at which percolation first
// occurs: the minimum invasion pressure among the outlet sites. Requires
// inlets, outlets, and a completed access-limited run (the threshold is
// undefined without access limitation, ErrAccessOnly).
func (o *Ordinary) PercolationThreshold() (float64, error) {
	if !o.ran {
		return 0, ErrNotRun
	}
	if len(maskIDs(o.inlets)) == 0 {
		return 0, ErrNoInlets
	}
	outs := maskIDs(o.outlets)
	if len(outs) == 0 {
		return 0, ErrNoOutlets
	}
	if !o.opts.AccessLimited {
		return 0, ErrAccessOnly
	}
	thresh := math.Inf(1)
	for _, s := range outs {
		if o.pInv[s] < thresh {
			thresh = o.pInv[s]
		}
	}
	return thresh, nil
}

// IsPercolating reports whether a cluster spans inlets to outlets at the
// applied pressure. Two-tier check: the cheap scalar comparison against
// the minimum outlet invasion pressure short-circuits to false; only
// then is the full connectivity test run on the mask
// invasion_pressure < pressure.
func (o *Ordinary) IsPercolating(pressure float64) (bool, error) {
	if !o.ran {
		return false, ErrNotRun
	}
	ins := maskIDs(o.inlets)
	if len(ins) == 0 {
		return false, ErrNoInlets
	}
	outs := maskIDs(o.outlets)
	if len(outs) == 0 {
		return false, ErrNoOutlets
	}
	minOut := math.Inf(1)
	for _, s := range outs {
		if o.pInv[s] < minOut {
			minOut = o.pInv[s]
		}
	}
	if minOut > pressure {
		return false, nil
	}
	// Rigorous check only when the cheap test passes.
	if o.opts.Mode == cluster.Bond {
		open := make([]bool, o.nt)
		for t, v := range o.tInv {
			open[t] = v < pressure
		}
		return cluster.IsPercolating(o.conns, o.np, cluster.Bond, open, ins, outs)
	}
	open := make([]bool, o.np)
	for s, v := range o.pInv {
		open[s] = v < pressure
	}
	return cluster.IsPercolating(o.conns, o.np, cluster.Site, open, ins, outs)
}

// Results returns 1.0/0.0 occupancy for every element whose invasion
// pressure is ≤ the applied pressure; residual elements are occupied at
// every pressure. Pure, idempotent query: no state is mutated and the
// returned arrays are fresh.
// Complexity: O(Np + Nt).
func (o *Ordinary) Results(pressure float64) Occupancy {
	occ := Occupancy{
		Sites: make([]float64, o.np),
		Bonds: make([]float64, o.nt),
	}
	for s, v := range o.pInv {
		if v <= pressure || o.pRes[s] {
			occ.Sites[s] = 1.0
		}
	}
	for t, v := range o.tInv {
		if v <= pressure || o.tRes[t] {
			occ.Bonds[t] = 1.0
		}
	}
	return occ
}

// PercolationData assembles the capillary pressure curve from the run:
// sorted unique finite invasion pressures with a synthetic 0 floor,
// paired with cumulative invaded volume fraction. Without bound volume
// properties, sites weigh 1 and bonds 0.
func (o *Ordinary) PercolationData() (PcCurve, error) {
	if !o.ran {
		return PcCurve{}, ErrNotRun
	}
	siteVol := o.siteVol
	if siteVol == nil {
		siteVol = filled(o.np, 1)
	}
	bondVol := o.bondVol
	if bondVol == nil {
		bondVol = make([]float64, o.nt)
	}
	var total float64
	for _, v := range siteVol {
		total += v
	}
	for _, v := range bondVol {
		total += v
	}

	points := append([]float64{0}, uniqueFinite(o.pInv, o.tInv)...)
	sat := make([]float64, len(points))
	for i, p := range points {
		var v float64
		for s, inv := range o.pInv {
			if inv <= p {
				v += siteVol[s]
			}
		}
		for t, inv := range o.tInv {
			if inv <= p {
				v += bondVol[t]
			}
		}
		sat[i] = v / total
	}
	return PcCurve{Pressures: points, Saturations: sat}, nil
}

// Points returns a copy of the pressure points used by the last Run.
func (o *Ordinary) Points() []float64 {
	return append([]float64(nil), o.points...)
}

// SiteInvasionPressures returns a copy of the per-site invasion pressures.
func (o *Ordinary) SiteInvasionPressures() []float64 {
	return append([]float64(nil), o.pInv...)
}

// BondInvasionPressures returns a copy of the per-bond invasion pressures.
func (o *Ordinary) BondInvasionPressures() []float64 {
	return append([]float64(nil), o.tInv...)
}

// SiteInvasionSequences returns a copy of the per-site invasion sequences.
func (o *Ordinary) SiteInvasionSequences() []int {
	return append([]int(nil), o.pSeq...)
}

// BondInvasionSequences returns a copy of the per-bond invasion sequences.
func (o *Ordinary) BondInvasionSequences() []int {
	return append([]int(nil), o.tSeq...)
}

// InletSites returns the ascending inlet site ids.
func (o *Ordinary) InletSites() []int { return maskIDs(o.inlets) }

// OutletSites returns the ascending outlet site ids.
func (o *Ordinary) OutletSites() []int { return maskIDs(o.outlets) }

// rankPressures derives 0-based invasion sequences as the rank of each
// finite pressure among the sorted unique finite pressures of both
// element arrays pooled; ties share a rank, +Inf stays -1.
func rankPressures(pInv, tInv []float64) (pSeq, tSeq []int) {
	uniq := uniqueFinite(pInv, tInv)
	rank := func(v float64) int {
		if math.IsInf(v, 1) {
			return -1
		}
		return sort.SearchFloat64s(uniq, v)
	}
	pSeq = make([]int, len(pInv))
	for i, v := range pInv {
		pSeq[i] = rank(v)
	}
	tSeq = make([]int, len(tInv))
	for i, v := range tInv {
		tSeq[i] = rank(v)
	}
	return pSeq, tSeq
}

// uniqueFinite returns the ascending unique finite values of both arrays.
func uniqueFinite(a, b []float64) []float64 {
	vals := make([]float64, 0, len(a)+len(b))
	for _, v := range a {
		if !math.IsInf(v, 1) {
			vals = append(vals, v)
		}
	}
	for _, v := range b {
		if !math.IsInf(v, 1) {
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)
	uniq := vals[:0]
	for i, v := range vals {
		if i == 0 || v != vals[i-1] {
			uniq = append(uniq, v)
		}
	}
	return uniq
}

func maskIDs(mask []bool) []int {
	var ids []int
	for i, on := range mask {
		if on {
			ids = append(ids, i)
		}
	}
	return ids
}

func filled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func filledInt(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func minMax(vals []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
