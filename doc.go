// Package numberlink is the root of a Flow Free / Number Link solver core.
//
// 🧩 What is numberlink?
//
//	A dependency-light set of packages that turn a partially filled N×N
//	grid of integer color labels into either a fully covering assignment
//	of simple, disjoint, endpoint-to-endpoint paths, or a definitive
//	"no solution" verdict.
//
// Three interchangeable strategies share one board/result contract:
//
//	board/      — grid validation, endpoint-pair indexing, cloning
//	queue/      — heap and FIFO containers shared by every strategy
//	reach/      — A* shortest open-cell distance (pruner + heuristic)
//	pathsolve/  — per-color BFS path enumeration ("A* strategy")
//	heuristic/  — best-first search over partial boards ("flow strategy")
//	satenc/     — constraint encoding + in-process constraint solver
//	solver/     — the strategy dispatcher and uniform result envelope
//	wire/       — the heuristic-BFS back-end's text/JSON grid codec
//	telemetry/  — optional Prometheus instrumentation for solve calls
//
// Quick ASCII example, a 4×4 board with two colors:
//
//	1 . . 2
//	. . . .
//	. 1 2 .
//	. . . .
//
// Dive into solver.Solve for the single entry point most callers need.
package numberlink
