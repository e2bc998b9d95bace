// Package decimal implements the arbitrary-precision base-10^9 signed
// decimal type of the scalar planner (which is itself out of this
// module's scope) (§3.6, §4.5). A Decimal has a fixed (precision, scale): precision is the total
// significant digit budget, scale the number of digits kept after the
// decimal point.
package decimal

import "errors"

var (
	ErrDivisionByZero         = errors.New("decimal: division by zero")
	ErrNumericValueOutOfRange = errors.New("decimal: numeric value out of range")
	ErrInvalidCharacter       = errors.New("decimal: invalid character")
	ErrBadArgument            = errors.New("decimal: bad argument")
)
