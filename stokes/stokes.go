package stokes

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/poreflow/network"
	"github.com/katalvlaran/poreflow/phase"
)

// StokesFlow solves conductance-weighted Laplacian flow on one network
// with one conductance snapshot. Instances are single-use: construct,
// set boundary values, Run, query, discard.
type StokesFlow struct {
	net    *network.Network
	np     int
	conns  [][2]int
	g      []float64
	visc   float64
	opts   Options
	bcVal  []float64
	bcSet  []bool
	press  []float64
	solved bool
}

// compile-time check: StokesFlow satisfies the Solver contract.
var _ Solver = (*StokesFlow)(nil)

// New snapshots the bond conductances stored under (OnBonds, conductance)
// on the phase and prepares a solver. The phase's mean site viscosity
// enters Darcy's law; it defaults to 1 when unset. Fails with a wrapped
// ErrMissingProperty if the conductance array is absent.
// Complexity: O(Np + Nt).
func New(ph *phase.Phase, conductance phase.Kind, opts Options) (*StokesFlow, error) {
	g, err := ph.Get(phase.OnBonds, conductance)
	if err != nil {
		return nil, fmt.Errorf("stokes: new solver: %w", err)
	}
	net := ph.Network()
	np := net.NumSites()
	opts.normalize(np)

	visc := 1.0
	if ph.Has(phase.OnSites, phase.Viscosity) {
		mu, _ := ph.Get(phase.OnSites, phase.Viscosity)
		var sum float64
		for _, v := range mu {
			sum += v
		}
		visc = sum / float64(len(mu))
	}

	return &StokesFlow{
		net:   net,
		np:    np,
		conns: net.Connections(),
		g:     append([]float64(nil), g...),
		visc:  visc,
		opts:  opts,
		bcVal: make([]float64, np),
		bcSet: make([]bool, np),
	}, nil
}

// SetValueBC fixes the pressure of the given sites to value. Calling it
// after Run invalidates the previous solution.
func (sf *StokesFlow) SetValueBC(sites []int, value float64) error {
	for _, s := range sites {
		if s < 0 || s >= sf.np {
			return fmt.Errorf("%w: boundary site %d (Np=%d)", network.ErrSiteIndex, s, sf.np)
		}
		sf.bcVal[s] = value
		sf.bcSet[s] = true
	}
	sf.solved = false
	return nil
}

// Run solves for the free-site pressures with conjugate gradients.
// Convergence is declared when the residual 2-norm falls below
// Tol·max(1, ‖b‖); exhausting MaxIter yields ErrNotConverged carrying
// the final residual. ctx is checked every iteration.
// Complexity: O(iterations · (Np + Nt)).
func (sf *StokesFlow) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	nBC := 0
	for _, set := range sf.bcSet {
		if set {
			nBC++
		}
	}
	if nBC == 0 {
		return fmt.Errorf("%w (network %q)", ErrNoBC, sf.net.Name())
	}

	// Index the free sites.
	freeIdx := make([]int, sf.np) // site → free index, -1 for boundary
	var free []int
	for s := 0; s < sf.np; s++ {
		if sf.bcSet[s] {
			freeIdx[s] = -1
		} else {
			freeIdx[s] = len(free)
			free = append(free, s)
		}
	}

	n := len(free)
	diag := make([]float64, n)
	b := make([]float64, n)
	// Free-free couplings as flat adjacency slices.
	nbr := make([][]int, n)
	nbrG := make([][]float64, n)
	for t, c := range sf.conns {
		g := sf.g[t]
		i, j := freeIdx[c[0]], freeIdx[c[1]]
		switch {
		case i >= 0 && j >= 0:
			diag[i] += g
			diag[j] += g
			nbr[i] = append(nbr[i], j)
			nbrG[i] = append(nbrG[i], g)
			nbr[j] = append(nbr[j], i)
			nbrG[j] = append(nbrG[j], g)
		case i >= 0:
			diag[i] += g
			b[i] += g * sf.bcVal[c[1]]
		case j >= 0:
			diag[j] += g
			b[j] += g * sf.bcVal[c[0]]
		}
	}
	// A site with no conductance path is pinned at zero pressure so the
	// system stays positive definite.
	for i := range diag {
		if diag[i] == 0 {
			diag[i] = 1
			b[i] = 0
		}
	}

	matvec := func(dst, x []float64) {
		for i := range dst {
			v := diag[i] * x[i]
			row, rowG := nbr[i], nbrG[i]
			for k, j := range row {
				v -= rowG[k] * x[j]
			}
			dst[i] = v
		}
	}

	// Conjugate gradients from x = 0.
	x := make([]float64, n)
	r := append([]float64(nil), b...)
	p := append([]float64(nil), b...)
	ap := make([]float64, n)
	rs := floats.Dot(r, r)
	bnorm := math.Sqrt(rs)
	tol := sf.opts.Tol * math.Max(1, bnorm)

	if bnorm > tol {
		converged := false
		for iter := 0; iter < sf.opts.MaxIter; iter++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			matvec(ap, p)
			alpha := rs / floats.Dot(p, ap)
			floats.AddScaled(x, alpha, p)
			floats.AddScaled(r, -alpha, ap)
			rsNew := floats.Dot(r, r)
			if math.Sqrt(rsNew) <= tol {
				converged = true
				break
			}
			beta := rsNew / rs
			for i := range p {
				p[i] = r[i] + beta*p[i]
			}
			rs = rsNew
		}
		if !converged {
			return fmt.Errorf("%w: residual %.3e after %d iterations (network %q)",
				ErrNotConverged, math.Sqrt(floats.Dot(r, r)), sf.opts.MaxIter, sf.net.Name())
		}
	}

	sf.press = make([]float64, sf.np)
	for s := 0; s < sf.np; s++ {
		if sf.bcSet[s] {
			sf.press[s] = sf.bcVal[s]
		} else {
			sf.press[s] = x[freeIdx[s]]
		}
	}
	sf.solved = true
	return nil
}

// Pressures returns a copy of the solved site pressure field.
func (sf *StokesFlow) Pressures() ([]float64, error) {
	if !sf.solved {
		return nil, ErrNotSolved
	}
	return append([]float64(nil), sf.press...), nil
}

// Rate returns the net volumetric flow out of the given site set:
// Σ g·(p_in − p_out) over bonds crossing the set boundary.
// Complexity: O(Np + Nt).
func (sf *StokesFlow) Rate(sites []int) (float64, error) {
	if !sf.solved {
		return 0, ErrNotSolved
	}
	in := make([]bool, sf.np)
	for _, s := range sites {
		if s < 0 || s >= sf.np {
			return 0, fmt.Errorf("%w: site %d (Np=%d)", network.ErrSiteIndex, s, sf.np)
		}
		in[s] = true
	}
	var q float64
	for t, c := range sf.conns {
		switch {
		case in[c[0]] && !in[c[1]]:
			q += sf.g[t] * (sf.press[c[0]] - sf.press[c[1]])
		case in[c[1]] && !in[c[0]]:
			q += sf.g[t] * (sf.press[c[1]] - sf.press[c[0]])
		}
	}
	return q, nil
}

// EffectivePermeability applies Darcy's law between the inlet and outlet
// site sets: K = Q·μ·L / (A·ΔP) with ΔP the difference of mean set
// pressures. Coinciding means yield ErrNoGradient.
func (sf *StokesFlow) EffectivePermeability(inlets, outlets []int) (float64, error) {
	if !sf.solved {
		return 0, ErrNotSolved
	}
	meanAt := func(sites []int) (float64, error) {
		var sum float64
		for _, s := range sites {
			if s < 0 || s >= sf.np {
				return 0, fmt.Errorf("%w: site %d (Np=%d)", network.ErrSiteIndex, s, sf.np)
			}
			sum += sf.press[s]
		}
		return sum / float64(len(sites)), nil
	}
	pin, err := meanAt(inlets)
	if err != nil {
		return 0, err
	}
	pout, err := meanAt(outlets)
	if err != nil {
		return 0, err
	}
	dp := pin - pout
	if dp == 0 {
		return 0, fmt.Errorf("%w (network %q)", ErrNoGradient, sf.net.Name())
	}
	q, err := sf.Rate(inlets)
	if err != nil {
		return 0, err
	}
	return q * sf.visc * sf.opts.Length / (sf.opts.Area * dp), nil
}
