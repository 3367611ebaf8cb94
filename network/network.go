package network

import "fmt"

// Network is an immutable pore-network topology: Np sites (pores) joined
// by Nt bonds (throats), each bond connecting exactly two sites.
//
// Labels are registered at construction time (Cubic does this for the six
// lattice faces) or immediately after via AddLabel; all algorithm packages
// treat a Network as read-only.
type Network struct {
	name string

	np    int
	conns [][2]int

	// siteBonds[s] lists the bonds incident to site s, ascending.
	siteBonds [][]int

	// labels maps a label name to a boolean mask of length Np.
	labels map[string][]bool
}

// New constructs a Network from a connection table. The table is
// deep-copied to guarantee immutability. Every endpoint must lie in
// [0, np); otherwise ErrSiteIndex is returned naming the offending bond.
// Complexity: O(Np + Nt) time and memory.
func New(name string, np int, conns [][2]int) (*Network, error) {
	if np < 1 {
		return nil, fmt.Errorf("%w: np=%d", ErrBadDims, np)
	}
	if len(conns) == 0 {
		return nil, ErrNoBonds
	}
	cp := make([][2]int, len(conns))
	for t, c := range conns {
		if c[0] < 0 || c[0] >= np || c[1] < 0 || c[1] >= np {
			return nil, fmt.Errorf("%w: bond %d connects (%d,%d), Np=%d",
				ErrSiteIndex, t, c[0], c[1], np)
		}
		cp[t] = c
	}
	// Precompute site→bond incidence in bond order, so NeighborBonds is
	// deterministic and O(deg).
	incidence := make([][]int, np)
	for t, c := range cp {
		incidence[c[0]] = append(incidence[c[0]], t)
		if c[1] != c[0] {
			incidence[c[1]] = append(incidence[c[1]], t)
		}
	}
	return &Network{
		name:      name,
		np:        np,
		conns:     cp,
		siteBonds: incidence,
		labels:    make(map[string][]bool),
	}, nil
}

// Name returns the network's name, used in error messages downstream.
func (n *Network) Name() string { return n.name }

// NumSites returns Np, the number of sites (pores).
func (n *Network) NumSites() int { return n.np }

// NumBonds returns Nt, the number of bonds (throats).
func (n *Network) NumBonds() int { return len(n.conns) }

// Connections returns a fresh copy of the (Nt,2) connection table.
// Complexity: O(Nt).
func (n *Network) Connections() [][2]int {
	cp := make([][2]int, len(n.conns))
	copy(cp, n.conns)
	return cp
}

// BondEndpoints returns the two sites joined by bond t.
func (n *Network) BondEndpoints(t int) (int, int, error) {
	if t < 0 || t >= len(n.conns) {
		return 0, 0, fmt.Errorf("%w: %d (Nt=%d)", ErrBondIndex, t, len(n.conns))
	}
	return n.conns[t][0], n.conns[t][1], nil
}

// NeighborBonds returns the bonds incident to site s, ascending.
// The returned slice is shared internal state; callers must not mutate it.
// Complexity: O(1).
func (n *Network) NeighborBonds(s int) ([]int, error) {
	if s < 0 || s >= n.np {
		return nil, fmt.Errorf("%w: %d (Np=%d)", ErrSiteIndex, s, n.np)
	}
	return n.siteBonds[s], nil
}
