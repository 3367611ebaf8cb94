package network

import (
	"fmt"
	"math"
)

// InterpolateData converts between site and bond data by unweighted
// averaging, mirroring how geometry packages fill one element type from
// the other:
//
//   - len(vals) == Np: returns an Nt-long array, each bond receiving the
//     mean of its two endpoint values.
//   - len(vals) == Nt: returns an Np-long array, each site receiving the
//     mean over its incident bonds (NaN for a site with no bonds).
//
// Any other length is ambiguous and returns ErrAmbiguousLength naming the
// received length and both valid counts.
// Complexity: O(Np + Nt).
func (n *Network) InterpolateData(vals []float64) ([]float64, error) {
	switch len(vals) {
	case n.np:
		out := make([]float64, len(n.conns))
		for t, c := range n.conns {
			out[t] = (vals[c[0]] + vals[c[1]]) / 2
		}
		return out, nil
	case len(n.conns):
		out := make([]float64, n.np)
		for s := 0; s < n.np; s++ {
			bonds := n.siteBonds[s]
			if len(bonds) == 0 {
				out[s] = math.NaN()
				continue
			}
			var sum float64
			for _, t := range bonds {
				sum += vals[t]
			}
			out[s] = sum / float64(len(bonds))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %d, want Np=%d or Nt=%d on network %q",
			ErrAmbiguousLength, len(vals), n.np, len(n.conns), n.name)
	}
}
