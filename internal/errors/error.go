package errors

import "errors"

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrBoardSize         = errors.New("unsupported board size")
	ErrMalformedSGF      = errors.New("malformed sgf")
	ErrAnnotation        = errors.New("invalid position annotation")
	ErrUnknownDragon     = errors.New("no dragon at the given point")
	ErrUnbalancedTrial   = errors.New("trial move stack not restored")
)
