// Package curve implements the group of points on an elliptic curve in
// short Weierstrass form, y² = x³ + ax + b, over a prime field.
//
// A Point is either an (x, y) coordinate pair satisfying the defining
// equation or the point at infinity, which acts as the group identity.
// Add implements the chord-and-tangent group law and ScalarMul the usual
// binary double-and-add on top of it.
package curve
