package php

import "errors"

var (
	// ErrKeySpaceExhausted is returned by Append when the next integer
	// key would exceed the long range.
	ErrKeySpaceExhausted = errors.New("cannot add element to the array as the next element is already occupied")

	// ErrOutOfRange is returned for splice offsets or lengths outside the
	// table.
	ErrOutOfRange = errors.New("offset or length out of range")

	// ErrIncompatibleNested is returned when a nested array or object is
	// requested at a slot holding an incompatible non-empty value.
	ErrIncompatibleNested = errors.New("cannot use a scalar value as an array")

	ErrDivisionByZero     = errors.New("division by zero")
	ErrModuloByZero       = errors.New("modulo by zero")
	ErrUnsupportedOperand = errors.New("unsupported operand types")

	// ErrRowCount is returned by MultiSort when the tables differ in size.
	ErrRowCount = errors.New("array sizes are inconsistent")
)
