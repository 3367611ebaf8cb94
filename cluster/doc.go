// Package cluster provides the pure graph functions behind percolation:
// connected-component labeling of the open subgraph, removal of clusters
// isolated from an inlet set, and the inlet→outlet spanning test.
//
// What:
//
//   - BondPercolation / SitePercolation partition the open subgraph into
//     clusters via union-find and return dense labels; -1 marks elements
//     outside every cluster.
//   - RemoveIsolated resets clusters containing no inlet site to -1.
//   - IsPercolating reports whether any inlet and outlet share a cluster.
//
// Why:
//
//   - The ordinary percolation engine calls these once per threshold, so
//     they must stay near-linear: union-find with path compression gives
//     O((Np+Nt)·α(Np)) per call, no per-call graph rebuild.
//
// Determinism:
//
//   - Cluster ids are assigned densely in first-touch element order, so
//     identical inputs always produce identical labels (no randomness,
//     no map iteration).
//
// Errors:
//
//   - ErrMaskLength: the open mask length does not match the mode's
//     element count.
//   - ErrBadMode: mode is neither Bond nor Site.
package cluster
