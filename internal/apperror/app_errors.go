package apperror

import "errors"

var (
	ErrInvalidIndex     = errors.New("cell index out of range")
	ErrOccupiedCell     = errors.New("cell is already occupied")
	ErrMalformedInput   = errors.New("input is not a number")
	ErrInputClosed      = errors.New("input closed")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrIllegalMove      = errors.New("move source returned an illegal move")
	ErrGameFinished     = errors.New("game is already finished")
	ErrInvalidSeats     = errors.New("players must hold distinct symbols")
)
