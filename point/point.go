package point

import (
	"fmt"
	"math"

	"github.com/mitchellh/hashstructure/v2"
)

// Point is a 2D coordinate. Neither coordinate is ever NaN: every
// constructor and mutator validates what it writes.
//
// Methods documented as returning a new point leave the receiver untouched.
// Add, Subtract, Set, SetX, SetY, SetLength and SetAngle change it in place.
// A Point is not safe for concurrent mutation.
type Point struct {
	x, y float64
}

// New returns the point (x, y).
func New(x, y float64) (*Point, error) {
	if err := check(x, y); err != nil {
		return nil, err
	}
	return &Point{x: x, y: y}, nil
}

// FromArray builds a point from its ordered pair form.
func FromArray(a [2]float64) (*Point, error) {
	return New(a[0], a[1])
}

// From builds a point from any operand shape. A missing operand yields the
// origin.
func From(o Operand) (*Point, error) {
	x, y, err := o.resolve(true)
	if err != nil {
		return nil, err
	}
	return &Point{x: x, y: y}, nil
}

// Zero returns a new point at the origin.
func Zero() *Point {
	return &Point{}
}

func (p *Point) X() float64 { return p.x }
func (p *Point) Y() float64 { return p.y }

// commit writes (x, y) into p. On error p keeps its previous value.
func (p *Point) commit(x, y float64) error {
	if err := check(x, y); err != nil {
		return err
	}
	p.x, p.y = x, y
	return nil
}

func (p *Point) Clone() *Point {
	return &Point{x: p.x, y: p.y}
}

// Add translates p by o in place and returns p. A missing operand is a no-op.
func (p *Point) Add(o Operand) (*Point, error) {
	x, y, err := o.resolve(true)
	if err != nil {
		return nil, err
	}
	if err := p.commit(p.x+x, p.y+y); err != nil {
		return nil, err
	}
	return p, nil
}

// Subtract translates p by -o in place and returns p. A missing operand is a
// no-op.
func (p *Point) Subtract(o Operand) (*Point, error) {
	x, y, err := o.resolve(true)
	if err != nil {
		return nil, err
	}
	if err := p.commit(p.x-x, p.y-y); err != nil {
		return nil, err
	}
	return p, nil
}

// Multiply returns a new point with the elementwise product of p and o.
func (p *Point) Multiply(o Operand) (*Point, error) {
	x, y, err := o.resolve(false)
	if err != nil {
		return nil, err
	}
	return New(p.x*x, p.y*y)
}

// Divide returns a new point with the elementwise quotient of p and o.
// Division by zero follows IEEE 754; a 0/0 axis is reported as invalid.
func (p *Point) Divide(o Operand) (*Point, error) {
	x, y, err := o.resolve(false)
	if err != nil {
		return nil, err
	}
	return New(p.x/x, p.y/y)
}

// Modulo returns a new point whose x is the bitwise AND of both x values,
// truncated to 32-bit integers, and whose y is the floating remainder of
// p.y / o.y.
func (p *Point) Modulo(o Operand) (*Point, error) {
	x, y, err := o.resolve(false)
	if err != nil {
		return nil, err
	}
	return New(float64(toInt32(p.x)&toInt32(x)), math.Mod(p.y, y))
}

// Scale returns a new point with both coordinates multiplied by k.
func (p *Point) Scale(k float64) (*Point, error) {
	if err := checkNumber("scalefactor", k); err != nil {
		return nil, err
	}
	return New(p.x*k, p.y*k)
}

func (p *Point) Negate() *Point {
	return &Point{x: -p.x, y: -p.y}
}

// Set overwrites both coordinates of p and returns p. Unlike Add, a missing
// operand is an error.
func (p *Point) Set(o Operand) (*Point, error) {
	x, y, err := o.resolve(false)
	if err != nil {
		return nil, err
	}
	p.x, p.y = x, y
	return p, nil
}

func (p *Point) SetX(v float64) (*Point, error) {
	if err := checkNumber("x", v); err != nil {
		return nil, err
	}
	p.x = v
	return p, nil
}

func (p *Point) SetY(v float64) (*Point, error) {
	if err := checkNumber("y", v); err != nil {
		return nil, err
	}
	p.y = v
	return p, nil
}

// Equals reports whether p and o have exactly the same coordinates. No
// tolerance is applied.
func (p *Point) Equals(o Operand) (bool, error) {
	x, y, err := o.resolve(false)
	if err != nil {
		return false, err
	}
	return p.x == x && p.y == y, nil
}

func (p *Point) IsZero() bool {
	return p.x == 0 && p.y == 0
}

// ToArray returns the ordered pair form, accepted back by FromArray and Pair.
func (p *Point) ToArray() [2]float64 {
	return [2]float64{p.x, p.y}
}

func (p *Point) String() string {
	return fmt.Sprintf("Point( %s, %s )", formatNumber(p.x), formatNumber(p.y))
}

// Length returns the Euclidean norm of p.
func (p *Point) Length() float64 {
	return math.Sqrt(p.x*p.x + p.y*p.y)
}

// SetLength rescales p in place to the given length, keeping its direction,
// and returns length.
func (p *Point) SetLength(length float64) (float64, error) {
	if err := checkNumber("length", length); err != nil {
		return 0, err
	}
	rad := p.Angle() * math.Pi / 180
	if err := p.commit(length*math.Cos(rad), length*math.Sin(rad)); err != nil {
		return 0, err
	}
	return length, nil
}

// Angle returns the direction of p in degrees, in (-180, 180].
func (p *Point) Angle() float64 {
	return math.Atan2(p.y, p.x) * 180 / math.Pi
}

// SetAngle rotates p in place to the absolute angle deg, in degrees, keeping
// its length, and returns deg.
func (p *Point) SetAngle(deg float64) (float64, error) {
	if err := checkNumber("angle", deg); err != nil {
		return 0, err
	}
	radius := p.Length()
	rad := deg * math.Pi / 180
	if err := p.commit(radius*math.Cos(rad), radius*math.Sin(rad)); err != nil {
		return 0, err
	}
	return deg, nil
}

// Normalize returns a new point with the direction of p and length 1.
func (p *Point) Normalize() (*Point, error) {
	return p.NormalizeTo(1)
}

// NormalizeTo returns a new point with the direction of p and the given
// length.
func (p *Point) NormalizeTo(length float64) (*Point, error) {
	q := p.Clone()
	if _, err := q.SetLength(length); err != nil {
		return nil, err
	}
	return q, nil
}

// Rotate returns a new point rotated by deg degrees about the origin.
func (p *Point) Rotate(deg float64) (*Point, error) {
	return p.RotateAround(deg, Operand{})
}

// RotateAround returns a new point rotated by deg degrees about center. A
// missing center is the origin. A zero angle returns a plain clone.
func (p *Point) RotateAround(deg float64, center Operand) (*Point, error) {
	if err := checkNumber("angle", deg); err != nil {
		return nil, err
	}
	if deg == 0 {
		return p.Clone(), nil
	}
	cx, cy, err := center.resolve(true)
	if err != nil {
		return nil, err
	}

	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x, y := p.x-cx, p.y-cy
	return New(x*cos-y*sin+cx, x*sin+y*cos+cy)
}

// Hash returns a hash of the coordinates, suitable as a map key for
// deduplicating points. Points that are Equals hash the same, including 0
// and -0.
func (p *Point) Hash() uint64 {
	key := struct{ X, Y float64 }{p.x, p.y}
	if key.X == 0 {
		key.X = 0
	}
	if key.Y == 0 {
		key.Y = 0
	}
	hashed, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to hash point: %v", err))
	}
	return hashed
}

// toInt32 converts v to a 32-bit integer the way ECMAScript ToInt32 does:
// truncate, wrap modulo 2^32, and map NaN and infinities to 0.
func toInt32(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}
