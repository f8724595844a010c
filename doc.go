// Package gridflow computes the maximum sustained throughput between a set
// of source rooms and a set of sink rooms connected by a dense corridor
// capacity matrix.
//
// 🚀 What is gridflow?
//
//	A small, deterministic library for integer-exact maximum flow over
//	N×N capacity matrices:
//		• Multi-terminal reduction: collapse any source/sink sets into a
//		  single super-source and super-sink, with direct source→sink
//		  capacity accounted separately (“bypass flow”)
//		• Edmonds–Karp: breadth-first augmenting paths, polynomial even
//		  when capacities dwarf the node count
//		• Dinic: level graphs + blocking flows, for denser instances
//		• Minimum cut extraction in original node indices
//
// ✨ Why choose gridflow?
//
//   - Integer-exact – int64 end to end, no floating-point drift
//   - Deterministic – ascending-index tie-breaking, reproducible results
//   - Pure functions – no shared state, concurrent solves need no locks
//   - Observable – optional zap logger records every augmentation
//
// Everything is organized under two subpackages:
//
//	grid/ — capacity Matrix model, validation, multi-terminal Reduce
//	flow/ — EdmondsKarp, Dinic, MaxFlow, MinCut solvers
//
// Quick ASCII example:
//
//	    [0]──7──(1)──6──(2)──8──[3]
//
//	rooms 1 and 2 bound the corridor from entrance 0 to exit 3;
//	the sustained throughput is min(7, 6, 8) = 6 units per tick.
//
// Dive into the examples/ directory and per-package example tests for
// runnable scenarios.
//
//	go get github.com/katalvlaran/gridflow
package gridflow
