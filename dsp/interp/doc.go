// Package interp provides interpolation primitives used to turn sparse
// anchor points into a continuous curve.
//
// Available methods:
//
//   - [Linear]:  2-point linear interpolation
//   - [BSpline]: interpolating B-spline of degree 1 (piecewise linear),
//     2 (quadratic) or 3 (cubic, not-a-knot)
//
// [BSpline] places its knots the way scipy's interp1d does for the same
// kinds, so curves built from the same points agree with that tool.
package interp
