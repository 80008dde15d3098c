// Package pathfind provides a generic, single-threaded A* search over graphs
// with unit edge weights.
//
// The heuristic is supplied by the caller and is not required to be
// admissible: callers that fold penalties into it get a biased route rather
// than a shortest one. The search still terminates, since every node is
// expanded at most once.
package pathfind
