// Package stokes solves steady-state viscous flow on a pore network:
// given per-bond hydraulic conductances and fixed-pressure boundary
// sites, it computes the site pressure field and derives flow rates and
// effective permeability.
//
// What:
//
//   - Solver is the narrow contract the relative-permeability
//     orchestrator consumes; any external flow backend can stand in.
//   - StokesFlow is the built-in backend: conjugate gradients on the
//     conductance-weighted graph Laplacian restricted to free
//     (non-boundary) sites.
//   - EffectivePermeability applies Darcy's law to the converged field:
//     K = Q·μ·L / (A·ΔP).
//
// Why:
//
//   - The percolation workflow needs many small independent solves (two
//     per saturation point per axis); each StokesFlow instance is a
//     throwaway holding a conductance snapshot, so regenerating the
//     conduit model between solves can never leak into an older solve.
//
// Complexity:
//
//   - Run: O(MaxIter · (Np + Nt)) time, O(Np + Nt) memory; the matrix is
//     never materialized beyond adjacency slices.
//
// Errors:
//
//   - ErrNoBC: Run without any boundary site.
//   - ErrNotConverged: the residual failed to reach Options.Tol within
//     Options.MaxIter iterations.
//   - ErrNotSolved: a field query before a successful Run.
//   - ErrNoGradient: inlet and outlet mean pressures coincide, so no
//     permeability is defined.
package stokes
