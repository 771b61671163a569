package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no normaliser handles a document type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidEpoch indicates a reference epoch could not be parsed.
	ErrInvalidEpoch = errors.New("invalid reference epoch")

	// Normalisation Errors.
	// These never abort sentence processing; the offending match is dropped.

	// ErrUnrecognizedMonth indicates a month word whose abbreviation is not jan..dec.
	ErrUnrecognizedMonth = errors.New("unrecognized month")

	// ErrInvalidCalendarDate indicates well-formed numbers that do not form a real date.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)
