package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrConversion  = errors.New("invalid coordinates")
)

// ValidationError explains why a move is not legal in the current position.
type ValidationError struct {
	Move   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid move %s: %s", e.Move, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidMove
}

type ConversionError struct {
	Coord  UserCoord
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid coordinates %s: %s", e.Coord, e.Reason)
}

func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

// ConstructionError is the panic value of a board that cannot be built from
// its layout and deck.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return "cannot construct board: " + e.Reason
}
