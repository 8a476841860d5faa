// Package telemetry exports planning events as Prometheus metrics.
//
// Metrics implements pathfinder.Observer. Each instance registers its
// collectors on the registry it is given, so tests and CLI runs can use a
// private registry and dump it with prometheus.WriteToTextfile.
//
//	<ns>_searches_total{level,result}   counter
//	<ns>_search_expansions{level}       histogram
//	<ns>_search_duration_seconds{level} histogram
//	<ns>_window_reviews_total           counter
//	<ns>_beliefs_reopened_total         counter
//	<ns>_replans_total                  counter
package telemetry
