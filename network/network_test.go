package network

import (
	"errors"
	"math"
	"testing"
)

// TestNew_Validation exercises the constructor's index checks.
func TestNew_Validation(t *testing.T) {
	if _, err := New("n", 0, [][2]int{{0, 1}}); !errors.Is(err, ErrBadDims) {
		t.Fatalf("np=0: got %v; want ErrBadDims", err)
	}
	if _, err := New("n", 3, nil); !errors.Is(err, ErrNoBonds) {
		t.Fatalf("empty conns: got %v; want ErrNoBonds", err)
	}
	if _, err := New("n", 2, [][2]int{{0, 2}}); !errors.Is(err, ErrSiteIndex) {
		t.Fatalf("bad endpoint: got %v; want ErrSiteIndex", err)
	}
}

// TestNew_Incidence checks the precomputed site→bond incidence on a path
// graph 0—1—2.
func TestNew_Incidence(t *testing.T) {
	net, err := New("path", 3, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if net.NumSites() != 3 || net.NumBonds() != 2 {
		t.Fatalf("got Np=%d Nt=%d; want 3, 2", net.NumSites(), net.NumBonds())
	}
	mid, err := net.NeighborBonds(1)
	if err != nil {
		t.Fatalf("NeighborBonds failed: %v", err)
	}
	if len(mid) != 2 || mid[0] != 0 || mid[1] != 1 {
		t.Errorf("NeighborBonds(1) = %v; want [0 1]", mid)
	}
	if _, err = net.NeighborBonds(3); !errors.Is(err, ErrSiteIndex) {
		t.Errorf("NeighborBonds(3): got %v; want ErrSiteIndex", err)
	}
}

// TestCubic_Counts checks the 5×5×5 lattice used throughout the
// percolation tests: 125 sites, 300 bonds, 25 sites per face.
func TestCubic_Counts(t *testing.T) {
	net, err := Cubic("cube", 5, 5, 5, DefaultCubicOptions())
	if err != nil {
		t.Fatalf("Cubic failed: %v", err)
	}
	if net.NumSites() != 125 {
		t.Errorf("NumSites = %d; want 125", net.NumSites())
	}
	if net.NumBonds() != 300 {
		t.Errorf("NumBonds = %d; want 300", net.NumBonds())
	}
	for _, face := range []string{LabelLeft, LabelRight, LabelFront, LabelBack, LabelTop, LabelBottom} {
		sites, err := net.SitesWithLabel(face)
		if err != nil {
			t.Fatalf("SitesWithLabel(%q) failed: %v", face, err)
		}
		if len(sites) != 25 {
			t.Errorf("face %q has %d sites; want 25", face, len(sites))
		}
	}
}

// TestSites_Modes exercises the four label-combination modes on a 3×3×1
// lattice, where the "left" and "front" faces overlap at the corner site.
func TestSites_Modes(t *testing.T) {
	net, err := Cubic("plate", 3, 3, 1, DefaultCubicOptions())
	if err != nil {
		t.Fatalf("Cubic failed: %v", err)
	}
	names := []string{LabelLeft, LabelFront}

	union, err := net.Sites(names, ModeUnion)
	if err != nil {
		t.Fatalf("union failed: %v", err)
	}
	if len(union) != 5 { // 3 + 3 - 1 shared corner
		t.Errorf("union = %v; want 5 sites", union)
	}

	inter, err := net.Sites(names, ModeIntersection)
	if err != nil {
		t.Fatalf("intersection failed: %v", err)
	}
	if len(inter) != 1 || inter[0] != 0 {
		t.Errorf("intersection = %v; want [0]", inter)
	}

	// Exactly one label: the faces minus their shared corner.
	xone, err := net.Sites(names, ModeNotIntersection)
	if err != nil {
		t.Fatalf("not_intersection failed: %v", err)
	}
	if len(xone) != 4 {
		t.Errorf("not_intersection = %v; want 4 sites", xone)
	}
	for _, s := range xone {
		if s == 0 {
			t.Errorf("not_intersection includes the shared corner 0")
		}
	}

	none, err := net.Sites(names, ModeNone)
	if err != nil {
		t.Fatalf("none failed: %v", err)
	}
	if len(none) != 9-5 {
		t.Errorf("none = %v; want 4 sites", none)
	}

	if _, err = net.Sites([]string{"nope"}, ModeUnion); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("unknown label: got %v; want ErrUnknownLabel", err)
	}
	if _, err = net.Sites(names, LabelMode(99)); !errors.Is(err, ErrBadLabelMode) {
		t.Errorf("bad mode: got %v; want ErrBadLabelMode", err)
	}
}

// TestInterpolateData covers site→bond, bond→site, and the ambiguous case.
func TestInterpolateData(t *testing.T) {
	net, err := New("path", 3, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	bonds, err := net.InterpolateData([]float64{0, 2, 4})
	if err != nil {
		t.Fatalf("site→bond failed: %v", err)
	}
	if bonds[0] != 1 || bonds[1] != 3 {
		t.Errorf("site→bond = %v; want [1 3]", bonds)
	}

	sites, err := net.InterpolateData([]float64{2, 6})
	if err != nil {
		t.Fatalf("bond→site failed: %v", err)
	}
	want := []float64{2, 4, 6}
	for i := range want {
		if math.Abs(sites[i]-want[i]) > 1e-12 {
			t.Errorf("bond→site = %v; want %v", sites, want)
			break
		}
	}

	if _, err = net.InterpolateData([]float64{1, 2, 3, 4}); !errors.Is(err, ErrAmbiguousLength) {
		t.Errorf("ambiguous: got %v; want ErrAmbiguousLength", err)
	}
}
