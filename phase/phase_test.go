package phase

import (
	"errors"
	"testing"

	"github.com/katalvlaran/poreflow/network"
)

func testNet(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.New("tiny", 3, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("network.New failed: %v", err)
	}
	return net
}

// TestSetGet covers the round trip, the copy-in guarantee, and checked
// lookups for missing properties.
func TestSetGet(t *testing.T) {
	p := New(testNet(t), "water")

	in := []float64{1, 2}
	if err := p.Set(OnBonds, EntryPressure, in); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	in[0] = 99 // must not leak into the phase
	got, err := p.Get(OnBonds, EntryPressure)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got[0] != 1 || got[1] != 2 {
		t.Errorf("Get = %v; want [1 2]", got)
	}

	if _, err = p.Get(OnSites, Viscosity); !errors.Is(err, ErrMissingProperty) {
		t.Errorf("missing: got %v; want ErrMissingProperty", err)
	}
	if p.Has(OnSites, Viscosity) {
		t.Errorf("Has reported an unset property")
	}
}

// TestSet_Validation covers length and enum checks.
func TestSet_Validation(t *testing.T) {
	p := New(testNet(t), "oil")

	if err := p.Set(OnSites, Volume, []float64{1, 2}); !errors.Is(err, ErrBadLength) {
		t.Errorf("short array: got %v; want ErrBadLength", err)
	}
	if err := p.Set(Element(7), Volume, []float64{1}); !errors.Is(err, ErrBadElement) {
		t.Errorf("bad element: got %v; want ErrBadElement", err)
	}
	if err := p.Set(OnSites, Kind(99), []float64{1, 2, 3}); !errors.Is(err, ErrBadKind) {
		t.Errorf("bad kind: got %v; want ErrBadKind", err)
	}
}

// TestFill checks the constant-value helper.
func TestFill(t *testing.T) {
	p := New(testNet(t), "water")
	if err := p.Fill(OnSites, Viscosity, 0.001); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	vals, err := p.Get(OnSites, Viscosity)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(vals) != 3 {
		t.Fatalf("len = %d; want 3", len(vals))
	}
	for _, v := range vals {
		if v != 0.001 {
			t.Fatalf("Fill values = %v; want all 0.001", vals)
		}
	}
}
