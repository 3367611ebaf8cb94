// Package relperm orchestrates drainage relative-permeability sweeps:
// invasion percolation fills the network with non-wetting phase in
// saturation steps, and a flow solve per phase at each step yields
// kr = Keff/Kbase curves.
//
// What:
//
//   - Simulator binds a network, a wetting and a non-wetting phase, and
//     a SolverFactory producing flow solvers on demand.
//   - Run, per configured AxisPair: resolve the invasion inlet face
//     (subsampled by BoundaryStride) and the flow inlet/outlet faces;
//     solve each phase's single-phase baseline permeability; run one
//     invasion-percolation drainage from the inlets; then, per
//     saturation target, query occupancy, regenerate each phase's
//     conduit conductances under the configured ConduitPolicy, solve
//     both phases, and record kr = Keff/Kbase.
//   - Curves returns immutable copies of the per-pair results.
//
// Per-point failure is soft: a solver that fails to converge at one
// saturation drops that point and the sweep continues. Baseline
// failures abort the pair — without Kbase no point is meaningful. A
// phase occupying no bonds at some saturation records kr = 0 for that
// phase without a solve (ErrDegenerateSaturation internally).
//
// Options:
//
//   - Options.Pairs: invasion/flow axis pairs, e.g. {AxisX, AxisX}.
//   - Options.SatPoints: evenly spaced saturation targets in [0,1].
//   - Options.BoundaryStride: inlet-face subsampling stride.
//   - Options.Policy, Options.Factor: conduit gating and damping.
//   - Options.Ctx: cancellation, checked by each flow solve.
//
// Errors:
//
//   - ErrNilInput, ErrPhaseNetwork, ErrBadAxis, ErrBadPoints, ErrNotRun,
//     ErrDegenerateSaturation — see types.go.
package relperm
