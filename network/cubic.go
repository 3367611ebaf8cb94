package network

import "fmt"

// CubicOptions tunes lattice construction.
type CubicOptions struct {
	// Spacing is the center-to-center site distance, used to derive site
	// coordinates. Must be > 0.
	Spacing float64
}

// DefaultCubicOptions returns unit spacing.
func DefaultCubicOptions() CubicOptions {
	return CubicOptions{Spacing: 1.0}
}

// Face labels registered by Cubic, one per lattice face. The pairing
// follows the usual drainage convention: invasion along x enters at
// "left", along y at "front", along z at "top".
const (
	LabelLeft   = "left"   // x == 0
	LabelRight  = "right"  // x == nx-1
	LabelFront  = "front"  // y == 0
	LabelBack   = "back"   // y == ny-1
	LabelTop    = "top"    // z == 0
	LabelBottom = "bottom" // z == nz-1
)

// Cubic builds a regular nx×ny×nz lattice with 6-connectivity and the six
// face labels above. Sites are indexed x-fastest: id = x + nx·(y + ny·z).
// Bonds are emitted in +x, then +y, then +z order per site, so the bond
// ordering is deterministic.
// Complexity: O(nx·ny·nz) time and memory.
func Cubic(name string, nx, ny, nz int, opts CubicOptions) (*Network, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrBadDims, nx, ny, nz)
	}
	if opts.Spacing <= 0 {
		return nil, fmt.Errorf("%w: spacing=%g", ErrBadDims, opts.Spacing)
	}
	np := nx * ny * nz
	id := func(x, y, z int) int { return x + nx*(y+ny*z) }

	nt := (nx-1)*ny*nz + nx*(ny-1)*nz + nx*ny*(nz-1)
	if nt == 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d lattice has no bonds", ErrNoBonds, nx, ny, nz)
	}
	conns := make([][2]int, 0, nt)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				if x+1 < nx {
					conns = append(conns, [2]int{id(x, y, z), id(x + 1, y, z)})
				}
				if y+1 < ny {
					conns = append(conns, [2]int{id(x, y, z), id(x, y + 1, z)})
				}
				if z+1 < nz {
					conns = append(conns, [2]int{id(x, y, z), id(x, y, z + 1)})
				}
			}
		}
	}

	net, err := New(name, np, conns)
	if err != nil {
		return nil, err
	}

	// Register the six face labels.
	faces := map[string][]int{
		LabelLeft: {}, LabelRight: {},
		LabelFront: {}, LabelBack: {},
		LabelTop: {}, LabelBottom: {},
	}
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				s := id(x, y, z)
				if x == 0 {
					faces[LabelLeft] = append(faces[LabelLeft], s)
				}
				if x == nx-1 {
					faces[LabelRight] = append(faces[LabelRight], s)
				}
				if y == 0 {
					faces[LabelFront] = append(faces[LabelFront], s)
				}
				if y == ny-1 {
					faces[LabelBack] = append(faces[LabelBack], s)
				}
				if z == 0 {
					faces[LabelTop] = append(faces[LabelTop], s)
				}
				if z == nz-1 {
					faces[LabelBottom] = append(faces[LabelBottom], s)
				}
			}
		}
	}
	for name, sites := range faces {
		if err = net.AddLabel(name, sites); err != nil {
			return nil, err
		}
	}
	return net, nil
}
