// Package point provides the 2D point type shared by the shape and drawing
// code.
//
// Binary operations take an Operand, which is either a number pair (XY), an
// ordered pair (Pair) or another point (Of). Coordinates are float64 and are
// never NaN; an operation that would produce or accept a NaN fails with an
// *InvalidNumberError.
//
// Angles are in degrees at the API boundary.
package point
