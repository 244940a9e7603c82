package solver

import "errors"

var (
	// ErrNoMoves means no unknown cell has a positive heat score: either the
	// grid is exhausted or the remaining fleet can no longer be placed.
	ErrNoMoves = errors.New("no more moves")

	// ErrUnresolvableCluster means the open hits fit no remaining ship, which
	// happens when they span two ships.
	ErrUnresolvableCluster = errors.New("unresolvable hit cluster")

	ErrGameOver    = errors.New("game is over")
	ErrAlreadyShot = errors.New("cell already shot")
	ErrOutOfBounds = errors.New("cell out of bounds")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
