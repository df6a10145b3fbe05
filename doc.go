// Package gdrsa is a routing-and-spectrum-allocation library for
// elastic optical networks.
//
// It finds, for a demand between two vertices requesting a number of
// contiguous spectrum units, the cheapest path carrying a contiguous
// spectrum slot wide enough for the demand once distance-adaptive
// modulation is accounted for.
//
// Everything is organized under focused subpackages:
//
//	spectrum/  — contiguous-range and unit-set interval algebra
//	rsagraph/  — the multigraph model: vertices, edges, weight/nou/su
//	adaptive/  — distance-adaptive modulation policy
//	label/     — generic label, Permanent and Tentative Pareto frontiers
//	search/    — the generic-Dijkstra driver, its cross-check variants,
//	             and the Router that wires set_up/tear_down
//	stats/     — per-algorithm diagnostics accumulation
//	config/    — koanf-based configuration loading
//	logging/   — slog-based structured logging
//	dotgraph/  — Graphviz network loading
//	cmd/gdrsa/ — a CLI that solves one demand against a .dot network
package gdrsa
