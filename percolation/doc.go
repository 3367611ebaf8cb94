// Package percolation implements the two invasion engines of poreflow:
// ordinary (threshold-sweep) percolation and invasion (frontier-growth)
// percolation, plus the occupancy queries that turn their invasion state
// into per-element phase occupancy.
//
// What:
//
//   - Ordinary sweeps an ascending sequence of capillary pressures; at
//     each threshold every element with entry pressure ≤ threshold is
//     open, clusters are labeled, optionally filtered to those reachable
//     from the inlets (access-limited), and newly connected elements
//     record the current threshold as their invasion pressure.
//     First-invaded-wins: a finalized pressure is never revisited.
//   - Invasion grows the invading cluster one bond at a time from the
//     inlets, always through the cheapest accessible bond, recording a
//     per-element invasion sequence.
//   - Results / ResultsBySaturation convert invasion state into 1.0/0.0
//     occupancy arrays at a queried pressure or saturation.
//   - PercolationData assembles the capillary pressure curve: sorted
//     unique invasion pressures vs. cumulative invaded volume fraction.
//
// State machine (Ordinary):
//
//	UNCONFIGURED → Setup → CONFIGURED → Run → RUN → Reset → CONFIGURED
//
// Invariants:
//
//   - invasion_pressure assignments are monotone over the sweep and every
//     finite value is one of the sweep's thresholds.
//   - invasion_sequence is the 0-based rank of the element's finite
//     invasion pressure among all finite pressures assigned in the run;
//     ties share a rank, never-invaded elements keep -1.
//   - Results(p1) ⊆ Results(p2) for p1 < p2; queries never mutate state.
//
// Options:
//
//   - Options.Mode: cluster.Bond or cluster.Site (whose entry pressures
//     drive the sweep).
//   - Options.AccessLimited: restrict invasion to clusters connected to
//     the inlets (requires SetInlets before Run).
//   - Options.Ctx: cancellation checked once per threshold.
//
// Errors:
//
//   - ErrMode, ErrNotConfigured, ErrNoInlets, ErrNoOutlets, ErrNotRun,
//     ErrAccessOnly, ErrBadPoints — see types.go.
package percolation
