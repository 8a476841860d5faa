// Package areanav is hierarchical pathfinding for agents on 2D grid maps
// that only partially know the terrain.
//
// 🚀 What is areanav?
//
//	A map is cut once into areas, areas are linked through portal groups,
//	and every query is answered in two passes:
//		• Coarse: A* over the portal-group graph under the agent's belief
//		• Fine:   A* over raw cells inside each area on the coarse route
//	When the coarse pass fails, stale "closed" beliefs are reopened with a
//	shrinking window and the query is retried.
//
// Packages:
//
//	grid/        generic Grid[T], Cell, 4-connected components
//	core/        generic thread-safe Graph and LabeledGraph
//	pqueue/      ordered bucket priority queue with FIFO ties
//	astar/       generic A* with persistent Path lists and search stats
//	dijkstra/    exhaustive shortest paths, the optimality oracle
//	bfs/         reachability over generic neighbour functions
//	mapfile/     text map parser and map digest
//	partition/   scan-line map partitioner
//	portal/      portals, portal groups and the group graph builder
//	navmap/      a partitioned map with ground-truth portal state
//	belief/      per-agent portal-group passability with timestamps
//	pathfinder/  hierarchical planner, agents that travel and replan
//	cache/       SQLite store for derived map state
//	config/      YAML settings and logger construction
//	telemetry/   Prometheus metrics for searches and replans
//
// Quick ASCII example (two areas, one portal group at the gap):
//
//	. . . . .      1 1 1 1 1
//	@ @ . @ @  ->  @ @ 1 @ @
//	. . . . .      2 2 2 2 2
//
// The areanav command (cmd/areanav) partitions map files and runs agents.
package areanav
