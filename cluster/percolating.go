package cluster

import "fmt"

// IsPercolating reports whether the open subgraph connects the inlet set
// to the outlet set: true when any inlet site and any outlet site carry
// the same non-negative cluster id. The mask applies to bonds (Bond mode)
// or sites (Site mode).
//
// This is the expensive full connectivity check; callers holding invasion
// state should run their cheap scalar pre-check first (see
// percolation.Ordinary.IsPercolating).
//
// Complexity: O((Np+Nt)·α(Np)) time, O(Np+Nt) memory.
func IsPercolating(conns [][2]int, np int, mode Mode, open []bool, inlets, outlets []int) (bool, error) {
	var labels Labels
	var err error
	switch mode {
	case Bond:
		labels, err = BondPercolation(conns, np, open)
	case Site:
		labels, err = SitePercolation(conns, np, open)
	default:
		return false, fmt.Errorf("%w: %v", ErrBadMode, mode)
	}
	if err != nil {
		return false, err
	}

	in := make(map[int]struct{}, len(inlets))
	for _, s := range inlets {
		if s < 0 || s >= np {
			return false, fmt.Errorf("%w: inlet %d (Np=%d)", ErrSiteRange, s, np)
		}
		if id := labels.Sites[s]; id != Unlabeled {
			in[id] = struct{}{}
		}
	}
	if len(in) == 0 {
		return false, nil
	}
	for _, s := range outlets {
		if s < 0 || s >= np {
			return false, fmt.Errorf("%w: outlet %d (Np=%d)", ErrSiteRange, s, np)
		}
		if id := labels.Sites[s]; id != Unlabeled {
			if _, ok := in[id]; ok {
				return true, nil
			}
		}
	}
	return false, nil
}
