// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies beyond vector math, keeping the
// simulation logic pure and testable.
package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Modulus returns value mod m in [0, m), also for negative values.
// m must be positive.
func Modulus(value, m float64) float64 {
	result := math.Mod(value, m)
	if result < 0 {
		result += m
	}
	// -tiny + m can round up to m itself
	if result >= m {
		result = 0
	}
	return result
}

// Wrap returns the canonical representative of p in the cube [0, m)^3.
func Wrap(p r3.Vec, m float64) r3.Vec {
	return r3.Vec{
		X: Modulus(p.X, m),
		Y: Modulus(p.Y, m),
		Z: Modulus(p.Z, m),
	}
}

// axisDelta returns the shortest signed offset from a to b on a circle of
// circumference m. The result lies in (-m/2, m/2].
func axisDelta(a, b, m float64) float64 {
	d := Modulus(b-a, m)
	if d > m/2 {
		d -= m
	}
	return d
}

// ToroidalDelta returns the minimal-image displacement from one point to
// another: adding it to from lands on a representative of to.
func ToroidalDelta(from, to r3.Vec, m float64) r3.Vec {
	return r3.Vec{
		X: axisDelta(from.X, to.X, m),
		Y: axisDelta(from.Y, to.Y, m),
		Z: axisDelta(from.Z, to.Z, m),
	}
}

// ToroidalDistance returns the wraparound-aware distance between two points.
// Per axis the shorter of the direct and the wrapped separation is used.
// The result never exceeds m*sqrt(3)/2.
func ToroidalDistance(a, b r3.Vec, m float64) float64 {
	dx := axisDistance(a.X, b.X, m)
	dy := axisDistance(a.Y, b.Y, m)
	dz := axisDistance(a.Z, b.Z, m)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func axisDistance(a, b, m float64) float64 {
	d := Modulus(math.Abs(a-b), m)
	return math.Min(d, m-d)
}

// MaxToroidalDistance is the largest distance two points can have in a
// cube of side m.
func MaxToroidalDistance(m float64) float64 {
	return m * math.Sqrt(3) / 2
}

// Normalize returns the unit vector of v, or fallback when v has no length.
func Normalize(v, fallback r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return r3.Scale(1/n, v)
}
