package point

import "math"

// Operand is an argument to the binary Point operations. It is one of a
// number pair, an ordered pair or another Point. The zero value is a missing
// operand.
type Operand struct {
	x, y    float64
	present bool
}

// XY is the (number, number) operand shape.
func XY(x, y float64) Operand {
	return Operand{x: x, y: y, present: true}
}

// Pair is the ordered pair operand shape, the same shape ToArray returns.
func Pair(a [2]float64) Operand {
	return Operand{x: a[0], y: a[1], present: true}
}

// Of uses another point as operand. Only its coordinates are read. A nil
// point is a missing operand.
func Of(p *Point) Operand {
	if p == nil {
		return Operand{}
	}
	return Operand{x: p.x, y: p.y, present: true}
}

// IsMissing reports whether no value was supplied.
func (o Operand) IsMissing() bool {
	return !o.present
}

// resolve unwraps the operand into coordinates. A missing operand resolves to
// the origin when lenient is set and to NaN otherwise, so strict callers
// report it as an invalid x.
func (o Operand) resolve(lenient bool) (x, y float64, err error) {
	if !o.present {
		if lenient {
			return 0, 0, nil
		}
		return 0, 0, checkNumber("x", math.NaN())
	}
	if err := check(o.x, o.y); err != nil {
		return 0, 0, err
	}
	return o.x, o.y, nil
}
