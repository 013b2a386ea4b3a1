package point

import (
	"fmt"
	"math"
)

var ErrInvalidNumber = fmt.Errorf("point: invalid number")

// InvalidNumberError reports a coordinate or scalar operand that resolved to
// NaN. Field is one of "x", "y" or "scalefactor".
type InvalidNumberError struct {
	Field string
	Value float64
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s [%s] is Not a Number", e.Field, formatNumber(e.Value))
}

func (e *InvalidNumberError) Unwrap() error {
	return ErrInvalidNumber
}

func checkNumber(field string, v float64) error {
	if math.IsNaN(v) {
		return &InvalidNumberError{Field: field, Value: v}
	}
	return nil
}

// check validates both axes, x first.
func check(x, y float64) error {
	if err := checkNumber("x", x); err != nil {
		return err
	}
	return checkNumber("y", y)
}
