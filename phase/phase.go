package phase

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poreflow/network"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrMissingProperty indicates a Get on a (element, kind) pair that
	// was never Set on this phase.
	ErrMissingProperty = errors.New("phase: required property is missing")
	// ErrBadLength indicates a Set whose array length does not match the
	// element count of the bound network.
	ErrBadLength = errors.New("phase: property length does not match element count")
	// ErrBadElement indicates an Element value outside the defined range.
	ErrBadElement = errors.New("phase: invalid element axis")
	// ErrBadKind indicates a Kind value outside the defined range.
	ErrBadKind = errors.New("phase: invalid property kind")
)

// Element selects which element type a property lives on.
type Element int

const (
	// OnSites addresses per-site (pore) arrays of length Np.
	OnSites Element = iota
	// OnBonds addresses per-bond (throat) arrays of length Nt.
	OnBonds
)

// String implements fmt.Stringer for error messages.
func (e Element) String() string {
	switch e {
	case OnSites:
		return "sites"
	case OnBonds:
		return "bonds"
	default:
		return fmt.Sprintf("Element(%d)", int(e))
	}
}

// Kind enumerates the property kinds the poreflow algorithms consume.
type Kind int

const (
	// EntryPressure is the capillary pressure threshold to invade an element.
	EntryPressure Kind = iota
	// Volume is the element volume used for saturation weighting.
	Volume
	// Viscosity is the dynamic viscosity of the phase.
	Viscosity
	// Occupancy is the phase occupancy in [0,1] written by percolation results.
	Occupancy
	// HydraulicConductance is the single-phase bond conductance.
	HydraulicConductance
	// ConduitConductance is the multiphase pore-throat-pore conductance.
	ConduitConductance

	numKinds
)

// String implements fmt.Stringer for error messages.
func (k Kind) String() string {
	switch k {
	case EntryPressure:
		return "entry_pressure"
	case Volume:
		return "volume"
	case Viscosity:
		return "viscosity"
	case Occupancy:
		return "occupancy"
	case HydraulicConductance:
		return "hydraulic_conductance"
	case ConduitConductance:
		return "conduit_conductance"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type propKey struct {
	elem Element
	kind Kind
}

// Phase is a named set of typed property arrays bound to one network.
// The zero value is not usable; construct with New.
type Phase struct {
	name  string
	net   *network.Network
	props map[propKey][]float64
}

// New creates an empty property set named name over net.
func New(net *network.Network, name string) *Phase {
	return &Phase{
		name:  name,
		net:   net,
		props: make(map[propKey][]float64),
	}
}

// Name returns the phase name, used in error messages.
func (p *Phase) Name() string { return p.name }

// Network returns the bound topology.
func (p *Phase) Network() *network.Network { return p.net }

// count returns the element count for the given axis.
func (p *Phase) count(elem Element) (int, error) {
	switch elem {
	case OnSites:
		return p.net.NumSites(), nil
	case OnBonds:
		return p.net.NumBonds(), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrBadElement, elem)
	}
}

// Set stores vals under (elem, kind), copying the input. The length must
// equal Np (OnSites) or Nt (OnBonds); otherwise ErrBadLength is returned
// naming the phase, kind, and both lengths.
// Complexity: O(len(vals)).
func (p *Phase) Set(elem Element, kind Kind, vals []float64) error {
	if kind < 0 || kind >= numKinds {
		return fmt.Errorf("%w: %v on phase %q", ErrBadKind, kind, p.name)
	}
	n, err := p.count(elem)
	if err != nil {
		return err
	}
	if len(vals) != n {
		return fmt.Errorf("%w: %v.%v on phase %q has length %d, want %d",
			ErrBadLength, elem, kind, p.name, len(vals), n)
	}
	cp := make([]float64, n)
	copy(cp, vals)
	p.props[propKey{elem, kind}] = cp
	return nil
}

// Fill stores a constant value under (elem, kind).
// Complexity: O(n) for the element count n.
func (p *Phase) Fill(elem Element, kind Kind, v float64) error {
	n, err := p.count(elem)
	if err != nil {
		return err
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = v
	}
	return p.Set(elem, kind, vals)
}

// Has reports whether (elem, kind) is set.
func (p *Phase) Has(elem Element, kind Kind) bool {
	_, ok := p.props[propKey{elem, kind}]
	return ok
}

// Get returns the stored array for (elem, kind). The returned slice is
// shared internal state; callers must treat it as read-only. A missing
// property yields ErrMissingProperty naming the phase and the kind, so
// setup-time checks surface exactly what is absent.
// Complexity: O(1).
func (p *Phase) Get(elem Element, kind Kind) ([]float64, error) {
	vals, ok := p.props[propKey{elem, kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %v.%v on phase %q", ErrMissingProperty, elem, kind, p.name)
	}
	return vals, nil
}
