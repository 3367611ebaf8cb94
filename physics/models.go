package physics

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrLengthMismatch indicates input arrays of differing lengths.
	ErrLengthMismatch = errors.New("physics: input array length mismatch")
	// ErrBadValue indicates a non-positive physical input.
	ErrBadValue = errors.New("physics: physical input must be positive")
	// ErrBadPolicy indicates an unknown occupancy-combination policy.
	ErrBadPolicy = errors.New("physics: unknown conduit policy")
)

// Washburn computes capillary entry pressures from the Washburn relation
// Pc = −4·σ·cos(θ)/d per element diameter. σ is the surface tension,
// theta the contact angle in degrees (θ > 90° yields positive entry
// pressures, the drainage case).
// Complexity: O(n).
func Washburn(surfaceTension, contactAngleDeg float64, diameters []float64) ([]float64, error) {
	if surfaceTension <= 0 {
		return nil, fmt.Errorf("%w: surface tension %g", ErrBadValue, surfaceTension)
	}
	cosT := math.Cos(contactAngleDeg * math.Pi / 180)
	out := make([]float64, len(diameters))
	for i, d := range diameters {
		if d <= 0 {
			return nil, fmt.Errorf("%w: diameter[%d]=%g", ErrBadValue, i, d)
		}
		out[i] = -4 * surfaceTension * cosT / d
	}
	return out, nil
}

// HagenPoiseuille computes single-phase hydraulic conductances for
// cylindrical conduits: g = π·d⁴/(128·μ·L) per element.
// Complexity: O(n).
func HagenPoiseuille(viscosity float64, diameters, lengths []float64) ([]float64, error) {
	if viscosity <= 0 {
		return nil, fmt.Errorf("%w: viscosity %g", ErrBadValue, viscosity)
	}
	if len(diameters) != len(lengths) {
		return nil, fmt.Errorf("%w: %d diameters vs %d lengths",
			ErrLengthMismatch, len(diameters), len(lengths))
	}
	out := make([]float64, len(diameters))
	for i := range diameters {
		if diameters[i] <= 0 || lengths[i] <= 0 {
			return nil, fmt.Errorf("%w: element %d (d=%g, L=%g)",
				ErrBadValue, i, diameters[i], lengths[i])
		}
		out[i] = math.Pi * math.Pow(diameters[i], 4) / (128 * viscosity * lengths[i])
	}
	return out, nil
}

// ConduitPolicy selects how the pore-throat-pore occupancy pattern gates
// a conduit's conductance.
type ConduitPolicy int

const (
	// Strict keeps a conduit open only when the throat and both pores
	// are occupied by the phase — the conservative choice.
	Strict ConduitPolicy = iota
	// Medium requires the throat plus at least one pore.
	Medium
	// Loose requires only the throat.
	Loose
)

// String implements fmt.Stringer.
func (p ConduitPolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Medium:
		return "medium"
	case Loose:
		return "loose"
	default:
		return fmt.Sprintf("ConduitPolicy(%d)", int(p))
	}
}

// DefaultConduitFactor is the damping applied to conduits cut by the
// policy: the conductance is divided by this instead of zeroed, keeping
// the flow matrix non-singular.
const DefaultConduitFactor = 1e6

// occupied treats a fractional occupancy above one half as occupied.
const occupied = 0.5

// ConduitConductance combines per-bond single-phase conductances with
// phase occupancy into multiphase conduit conductances. conns is the
// (Nt,2) connection table; g the single-phase bond conductances;
// occSites/occBonds the phase occupancy arrays. Conduits whose occupancy
// pattern fails the policy are damped: g/factor.
// Complexity: O(Nt).
func ConduitConductance(conns [][2]int, g, occSites, occBonds []float64,
	policy ConduitPolicy, factor float64) ([]float64, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w: factor %g", ErrBadValue, factor)
	}
	if len(g) != len(conns) || len(occBonds) != len(conns) {
		return nil, fmt.Errorf("%w: %d conns, %d conductances, %d bond occupancies",
			ErrLengthMismatch, len(conns), len(g), len(occBonds))
	}
	out := make([]float64, len(g))
	for t, c := range conns {
		if c[0] >= len(occSites) || c[1] >= len(occSites) {
			return nil, fmt.Errorf("%w: %d site occupancies for bond (%d,%d)",
				ErrLengthMismatch, len(occSites), c[0], c[1])
		}
		throat := occBonds[t] > occupied
		p0 := occSites[c[0]] > occupied
		p1 := occSites[c[1]] > occupied

		var open bool
		switch policy {
		case Strict:
			open = throat && p0 && p1
		case Medium:
			open = throat && (p0 || p1)
		case Loose:
			open = throat
		default:
			return nil, fmt.Errorf("%w: %v", ErrBadPolicy, policy)
		}
		if open {
			out[t] = g[t]
		} else {
			out[t] = g[t] / factor
		}
	}
	return out, nil
}
