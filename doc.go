// Package poreflow is an in-memory engine for pore-network drainage
// simulation — from lattice construction through percolation to
// relative-permeability curves.
//
// 🚀 What is poreflow?
//
//	A single-threaded, deterministic simulation library that brings together:
//		• Networks: cubic lattices with face labels, label algebra, interpolation
//		• Phases: typed per-site / per-bond property storage
//		• Clustering: bond & site percolation labeling, isolation filtering
//		• Percolation: ordinary (threshold-sweep) and invasion (frontier) engines
//		• Physics: Washburn entry pressures, Hagen–Poiseuille conductances,
//		  multiphase conduit gating
//		• Flow: conjugate-gradient Stokes solves, effective permeability
//		• Orchestration: drainage relative-permeability sweeps per axis pair
//
// ✨ Why choose poreflow?
//
//   - Deterministic – identical inputs give identical curves, always
//   - Explicit guarantees – typed properties, sentinel errors, pure queries
//   - Idiomatic Go – options structs, context cancellation, no globals
//
// Under the hood, everything is organized under seven subpackages:
//
//	network/     — Network, cubic lattices, labels, pore↔throat interpolation
//	phase/       — Phase property registry (entry pressure, conductance, …)
//	cluster/     — union-find percolation labeling & inlet filtering
//	percolation/ — Ordinary & Invasion engines, occupancy, Pc curves
//	physics/     — capillary & hydraulic models, conduit conductance
//	stokes/      — StokesFlow CG solver, effective permeability
//	relperm/     — the relative-permeability Simulator
//
// Quick sketch of a drainage sweep:
//
//	net, _ := network.Cubic("demo", 10, 10, 10, network.DefaultCubicOptions())
//	air := phase.New(net, "air")      // invader: entry pressures + conductance
//	water := phase.New(net, "water")  // defender: conductance
//	sim, _ := relperm.NewSimulator(net, water, air,
//	    relperm.StokesFactory(stokes.DefaultOptions()), relperm.DefaultOptions())
//	_ = sim.Run()
//	curves, _ := sim.Curves()
//
// See examples/relperm_cubic for a complete program.
package poreflow
