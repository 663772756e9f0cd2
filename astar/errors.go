package astar

import "errors"

// Sentinel errors returned by grid construction and Search.
// Use errors.Is to check for them.
var (
	// ErrGridTooSmall indicates an N×N grid with N < 2; no distinct goal exists.
	ErrGridTooSmall = errors.New("grid must be at least 2x2")

	// ErrGridNotSquare indicates a row whose length differs from the row count.
	ErrGridNotSquare = errors.New("grid is not square")

	// ErrOutOfBounds indicates a start or goal outside the lattice.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrSameEndpoints indicates start and goal are the same cell.
	ErrSameEndpoints = errors.New("start and goal coincide")

	// ErrNoPath indicates the open set was exhausted without reaching the goal.
	ErrNoPath = errors.New("no path found")
)
