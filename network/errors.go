package network

import "errors"

// Sentinel errors for network construction and queries.
// Callers should branch with errors.Is; call sites wrap with %w context.
var (
	// ErrBadDims indicates a lattice dimension smaller than one.
	ErrBadDims = errors.New("network: lattice dimensions must be >= 1")
	// ErrNoBonds indicates an empty connection table.
	ErrNoBonds = errors.New("network: connection table must not be empty")
	// ErrSiteIndex indicates a site index outside [0, Np).
	ErrSiteIndex = errors.New("network: site index out of range")
	// ErrBondIndex indicates a bond index outside [0, Nt).
	ErrBondIndex = errors.New("network: bond index out of range")
	// ErrUnknownLabel indicates a label name that was never registered.
	ErrUnknownLabel = errors.New("network: unknown label")
	// ErrBadLabelMode indicates an unrecognized label-combination mode.
	ErrBadLabelMode = errors.New("network: invalid label mode")
	// ErrAmbiguousLength indicates data whose length matches neither the
	// site count nor the bond count, so its element type cannot be inferred.
	ErrAmbiguousLength = errors.New("network: data length matches neither site nor bond count")
)
