package rustty

import "errors"

var (
	// ErrInvalidOperation is returned when a value cannot be converted as requested,
	// such as encoding the Default color as a palette index.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrIndexOutOfBounds is returned when a column or row index lies outside the buffer.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
