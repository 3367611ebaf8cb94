package cluster

import "fmt"

// RemoveIsolated returns a copy of labels in which every cluster that
// contains no inlet site is reset to Unlabeled on both the site and bond
// arrays. Elements already Unlabeled stay Unlabeled. Pure function: the
// input Labels are not mutated.
//
// Complexity: O(Np + Nt) time and memory.
func RemoveIsolated(labels Labels, inlets []int) (Labels, error) {
	np := len(labels.Sites)
	keep := make(map[int]struct{}, len(inlets))
	for _, s := range inlets {
		if s < 0 || s >= np {
			return Labels{}, fmt.Errorf("%w: inlet %d (Np=%d)", ErrSiteRange, s, np)
		}
		if id := labels.Sites[s]; id != Unlabeled {
			keep[id] = struct{}{}
		}
	}

	sites := make([]int, np)
	for s, id := range labels.Sites {
		if _, ok := keep[id]; ok {
			sites[s] = id
		} else {
			sites[s] = Unlabeled
		}
	}
	bonds := make([]int, len(labels.Bonds))
	for t, id := range labels.Bonds {
		if _, ok := keep[id]; ok {
			bonds[t] = id
		} else {
			bonds[t] = Unlabeled
		}
	}
	return Labels{Sites: sites, Bonds: bonds}, nil
}
