package cluster

import (
	"errors"
	"fmt"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrMaskLength indicates an open mask whose length does not match
	// the element count implied by the mode.
	ErrMaskLength = errors.New("cluster: open mask length mismatch")
	// ErrBadMode indicates a Mode other than Bond or Site.
	ErrBadMode = errors.New("cluster: invalid percolation mode")
	// ErrSiteRange indicates an inlet or outlet site outside [0, Np).
	ErrSiteRange = errors.New("cluster: site index out of range")
)

// Unlabeled marks a site or bond that belongs to no cluster.
const Unlabeled = -1

// Mode selects whether the open mask applies to bonds or sites.
type Mode int

const (
	// Bond treats bonds as open/closed; sites inherit labels from any
	// open bond touching them.
	Bond Mode = iota + 1
	// Site treats sites as open/closed; a bond is labeled only when both
	// endpoints are open and co-clustered.
	Site
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Bond:
		return "bond"
	case Site:
		return "site"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Labels is the ephemeral result of one labeling call: per-site and
// per-bond cluster ids, Unlabeled (-1) where an element is in no cluster.
// Ids are dense non-negative integers unique within one call; there is no
// ordering guarantee across calls.
type Labels struct {
	Sites []int
	Bonds []int
}
