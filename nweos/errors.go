package nweos

import "errors"

var (
	// ErrNotFound is returned when no persisted card carries the
	// requested identifier.
	ErrNotFound = errors.New("character not found")

	// ErrInvalidShape marks a JSON blob that parses but is not shaped
	// like a character card.
	ErrInvalidShape = errors.New("invalid character card shape")

	// ErrUnknownSchema marks an import whose schema tag is not one this
	// codebase recognizes.
	ErrUnknownSchema = errors.New("unrecognized character card schema")
)
