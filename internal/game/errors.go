package game

import "errors"

// Rejection reasons surfaced in MoveOutcome. These are reportable values,
// not faults: a rejected move leaves the game untouched.
var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game over")
	ErrNothingToUndo = errors.New("nothing to undo")
)
