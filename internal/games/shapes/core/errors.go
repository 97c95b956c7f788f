package core

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNotAdjacent is returned when a swap names cells that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("cells are not adjacent")

	// ErrInvalidSize is returned when a grid is created with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid grid size")

	// ErrMalformedGrid is returned by ParseGrid for ragged rows or unknown letters.
	ErrMalformedGrid = errors.New("malformed grid")

	// ErrNoRNG is reported when a collapse needs refill tiles but no RNG was given.
	ErrNoRNG = errors.New("no random source for refills")

	// ErrCascadeLimit is reported when a cascade stops at its step cap
	// while matches remain on the board.
	ErrCascadeLimit = errors.New("cascade step limit reached")
)
