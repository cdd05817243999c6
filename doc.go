// Package gosom is a small, deterministic self-organizing map (Kohonen
// network) library: it maps high-dimensional sample vectors onto a 2-D grid
// of prototype vectors while preserving topological neighborhood relations.
//
// 🚀 What is gosom?
//
//	An incremental (online) SOM trainer built from small pieces:
//		• vectormath/ — Euclidean distance primitives
//		• topology/   — rectangular and hexagonal grid topologies
//		• grid/       — the prototype-vector grid and its RNG policy
//		• som/        — BMU search, decay schedules, the training loop,
//		                and map-quality metrics
//		• render/     — component-plane tables and flat TSV dumps
//
// ✨ Why choose gosom?
//
//   - Deterministic – fixed-seed RNG policy, reproducible training runs
//   - Explicit errors – sentinel errors, no panics on user input
//   - Allocation-aware – flat backing store, in-place updates on the hot path
//   - Pluggable lattices – topology is an injected strategy, not a subclass
//
// Quick start:
//
//	m, err := som.New("5x6", 3)           // 5×6 grid, 3-component samples
//	if err != nil { ... }
//	_ = m.Init()                          // random prototypes in [-0.5, 0.5)
//	_ = m.Train(300,
//		[]float64{3, 2, 4},
//		[]float64{-1, -1, -1},
//		[]float64{0, 4, -3},
//	)
//	cell, dist, _ := m.BMU([]float64{3, 2, 4})
//
// Training is sequential by contract: one Train call per map at a time.
// Long runs can be wrapped with TrainContext, which cancels cleanly at
// epoch boundaries.
package gosom
