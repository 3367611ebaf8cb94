package network

import (
	"fmt"
	"sort"
)

// LabelMode selects how multiple labels combine in Sites.
type LabelMode int

const (
	// ModeUnion selects sites carrying ANY of the given labels.
	ModeUnion LabelMode = iota
	// ModeIntersection selects sites carrying ALL of the given labels.
	ModeIntersection
	// ModeNotIntersection selects sites carrying EXACTLY ONE of the given
	// labels. Unusual set algebra, kept deliberately narrow: it exists to
	// pick out face sites that are not also edge or corner sites.
	ModeNotIntersection
	// ModeNone selects sites carrying NONE of the given labels.
	ModeNone
)

// String implements fmt.Stringer for diagnostics.
func (m LabelMode) String() string {
	switch m {
	case ModeUnion:
		return "union"
	case ModeIntersection:
		return "intersection"
	case ModeNotIntersection:
		return "not_intersection"
	case ModeNone:
		return "none"
	default:
		return fmt.Sprintf("LabelMode(%d)", int(m))
	}
}

// AddLabel applies a label to the given sites, merging with any sites the
// label already covers. Returns ErrSiteIndex on an out-of-range site.
// Labels are meant to be registered at construction time; algorithm
// packages only ever read them.
// Complexity: O(len(sites)).
func (n *Network) AddLabel(name string, sites []int) error {
	mask, ok := n.labels[name]
	if !ok {
		mask = make([]bool, n.np)
		n.labels[name] = mask
	}
	for _, s := range sites {
		if s < 0 || s >= n.np {
			return fmt.Errorf("%w: %d for label %q (Np=%d)", ErrSiteIndex, s, name, n.np)
		}
		mask[s] = true
	}
	return nil
}

// Labels returns the registered label names, sorted for determinism.
func (n *Network) Labels() []string {
	names := make([]string, 0, len(n.labels))
	for name := range n.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasLabel reports whether a label name is registered.
func (n *Network) HasLabel(name string) bool {
	_, ok := n.labels[name]
	return ok
}

// SitesWithLabel returns the ascending site ids carrying the given label.
// Returns ErrUnknownLabel for an unregistered name.
// Complexity: O(Np).
func (n *Network) SitesWithLabel(name string) ([]int, error) {
	return n.Sites([]string{name}, ModeUnion)
}

// Sites returns the ascending site ids selected by combining the given
// labels under mode. Every named label must be registered.
// Complexity: O(Np · len(names)).
func (n *Network) Sites(names []string, mode LabelMode) ([]int, error) {
	masks := make([][]bool, len(names))
	for i, name := range names {
		mask, ok := n.labels[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q on network %q", ErrUnknownLabel, name, n.name)
		}
		masks[i] = mask
	}
	out := make([]int, 0, n.np)
	for s := 0; s < n.np; s++ {
		hits := 0
		for _, mask := range masks {
			if mask[s] {
				hits++
			}
		}
		var keep bool
		switch mode {
		case ModeUnion:
			keep = hits > 0
		case ModeIntersection:
			keep = hits == len(masks)
		case ModeNotIntersection:
			keep = hits == 1
		case ModeNone:
			keep = hits == 0
		default:
			return nil, fmt.Errorf("%w: %v", ErrBadLabelMode, mode)
		}
		if keep {
			out = append(out, s)
		}
	}
	return out, nil
}
