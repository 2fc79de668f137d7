package math

import (
	m "math"

	"gonum.org/v1/gonum/num/quat"
)

// Euler angles in radians using the Z-Y-X (yaw, pitch, roll) convention.
type Euler struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// QuaternionFromSlice builds a quaternion from [w, x, y, z]. Missing or
// degenerate input yields the identity rotation.
func QuaternionFromSlice(q []float32) quat.Number {
	if len(q) < 4 {
		return quat.Number{Real: 1}
	}
	return quat.Number{
		Real: float64(q[0]),
		Imag: float64(q[1]),
		Jmag: float64(q[2]),
		Kmag: float64(q[3]),
	}
}

// EulerFromQuaternion converts a body-to-local rotation quaternion into
// Euler angles. The quaternion does not need to be normalized.
func EulerFromQuaternion(q quat.Number) Euler {
	norm := quat.Abs(q)
	if norm == 0 || m.IsNaN(norm) || m.IsInf(norm, 0) {
		return Euler{}
	}
	q = quat.Scale(1/norm, q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	roll := m.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	pitch := m.Asin(Constrain(2*(w*y-z*x), -1, 1))
	yaw := m.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))

	return Euler{Roll: roll, Pitch: pitch, Yaw: yaw}
}
