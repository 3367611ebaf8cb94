// Package physics provides the pore-scale property models consumed by
// the percolation and flow packages: capillary entry pressure, hydraulic
// conductance, and the multiphase conduit conductance that couples
// percolation occupancy into the flow solve.
//
// All models are pure functions from geometry/fluid arrays to property
// arrays; they hold no state and are invoked by the relative-permeability
// orchestrator, never by the percolation engines.
//
// What:
//
//   - Washburn: bond entry pressure −4σ·cosθ/d.
//   - HagenPoiseuille: single-phase bond conductance πd⁴/(128·μ·L).
//   - ConduitConductance: per-bond multiphase conductance under an
//     occupancy-combination policy (Strict, Medium, Loose); conduits cut
//     by the policy are damped by a large factor rather than zeroed so
//     the downstream linear system stays solvable.
//
// Errors:
//
//   - ErrLengthMismatch: input arrays disagree on element counts.
//   - ErrBadValue: a non-positive diameter, length, viscosity or factor.
//   - ErrBadPolicy: unknown occupancy-combination policy.
package physics
