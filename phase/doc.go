// Package phase holds per-phase physical properties as typed arrays over
// a network's sites and bonds.
//
// What:
//
//   - Kind is an enumerated property kind (entry pressure, volume,
//     viscosity, occupancy, hydraulic and conduit conductance), replacing
//     string-keyed lookups: a property is addressed by (Element, Kind)
//     and resolved with a checked Get at configuration time.
//   - Phase binds a named property set to one *network.Network; Set
//     validates array lengths against Np/Nt up front.
//
// Why:
//
//   - The percolation engines and the flow solver fail fast at setup with
//     ErrMissingProperty (naming the phase and the kind) instead of
//     discovering a missing key deep inside a sweep.
//
// Errors:
//
//   - ErrMissingProperty: Get on a kind that was never Set.
//   - ErrBadLength: Set with an array that matches neither element count.
//   - ErrBadElement / ErrBadKind: enum values outside the defined range.
package phase
