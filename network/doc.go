// Package network defines the pore-network topology shared by every
// algorithm in poreflow: a fixed set of sites (pores) connected by bonds
// (throats), plus named boolean labels over sites for addressing boundary
// regions.
//
// What:
//
//   - Network wraps an immutable (Nt,2) connection table with precomputed
//     site→bond incidence for O(deg) adjacency queries.
//   - Boolean site labels ("left", "right", ...) with set-algebra queries
//     (union, intersection, not-intersection, none).
//   - Cubic builds a regular nx×ny×nz lattice with the six face labels
//     used by the percolation and relative-permeability packages.
//   - InterpolateData maps site data onto bonds (endpoint mean) and bond
//     data onto sites (incident-bond mean).
//
// Why:
//
//   - Percolation, invasion and flow solves all operate on the same
//     read-only topology; keeping it in one immutable value lets the
//     algorithm packages stay pure.
//
// Complexity:
//
//   - New:              O(Np + Nt) time and memory.
//   - Cubic:            O(nx·ny·nz) time and memory.
//   - NeighborBonds:    O(1) (precomputed incidence).
//   - Sites(labels):    O(Np · len(labels)).
//   - InterpolateData:  O(Np + Nt).
//
// Errors:
//
//   - ErrBadDims: a lattice dimension is < 1.
//   - ErrNoBonds: the connection table is empty.
//   - ErrSiteIndex / ErrBondIndex: an index is outside [0, Np) / [0, Nt).
//   - ErrUnknownLabel: a label name was never registered.
//   - ErrBadLabelMode: unrecognized label-combination mode.
//   - ErrAmbiguousLength: data length matches neither Np nor Nt.
package network
