// Package astar provides an incremental A* search over square grid mazes.
//
// It exposes two entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: advance the search one expansion at a time to drive renderers or
//     debugging tools. Each Step returns StatusContinue, StatusSuccess or
//     StatusFailed; the open set, closed set and final path can be read between
//     calls.
//
// Cells are 8-connected. The heuristic is the Manhattan distance to the goal
// and the same function is used as the step cost, so a diagonal move costs 2.
// The open set prefers the smallest h and only then the smallest f. Both
// differ from textbook A*, so a returned path is not guaranteed to be the
// shortest one.
package astar
