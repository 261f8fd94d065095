package model

import "math"

// Matrix represents a PDF transformation matrix as a full 3x3 array.
//
// PDF matrices carry only six meaningful values (a b c d e f), but keeping
// the homogeneous third column makes multiplication uniform:
//
//	| a b 0 |
//	| c d 0 |
//	| e f 1 |
//
// Coordinates transform as row vectors: [x y 1] * M. Matrix is a value type,
// so assignment and function passing always copy.
type Matrix [3][3]float64

// NewMatrix returns an identity matrix
func NewMatrix() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMatrixFromComponents builds a matrix from the six PDF components
// as they appear in a cm or Tm operator: a b c d e f
func NewMatrixFromComponents(a, b, c, d, e, f float64) Matrix {
	return Matrix{
		{a, b, 0},
		{c, d, 0},
		{e, f, 1},
	}
}

// Translation returns a matrix that translates by (tx, ty)
func Translation(tx, ty float64) Matrix {
	return NewMatrixFromComponents(1, 0, 0, 1, tx, ty)
}

// Scaling returns a matrix that scales by (sx, sy)
func Scaling(sx, sy float64) Matrix {
	return NewMatrixFromComponents(sx, 0, 0, sy, 0, 0)
}

// Rotation returns a matrix that rotates by angle radians counterclockwise
func Rotation(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return NewMatrixFromComponents(cos, sin, -sin, cos, 0, 0)
}

// Mul returns m multiplied by other (m x other). PDF transform composition
// is post-multiplication: applying a local transform on top of a current one
// is local.Mul(current).
func (m Matrix) Mul(other Matrix) Matrix {
	var result Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return result
}

// Transform applies the matrix to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[1][0]*p.Y + m[2][0],
		Y: m[0][1]*p.X + m[1][1]*p.Y + m[2][1],
	}
}

// XScale returns the magnitude of the x scaling factor, accounting for
// rotation (the length of the transformed x unit vector)
func (m Matrix) XScale() float64 {
	return math.Sqrt(m[0][0]*m[0][0] + m[0][1]*m[0][1])
}

// YScale returns the magnitude of the y scaling factor
func (m Matrix) YScale() float64 {
	return math.Sqrt(m[1][0]*m[1][0] + m[1][1]*m[1][1])
}

// XPosition returns the x translation component (e)
func (m Matrix) XPosition() float64 {
	return m[2][0]
}

// YPosition returns the y translation component (f)
func (m Matrix) YPosition() float64 {
	return m[2][1]
}

// SetTranslation replaces the translation components, leaving the rest of
// the matrix untouched
func (m *Matrix) SetTranslation(tx, ty float64) {
	m[2][0] = tx
	m[2][1] = ty
}

// Components returns the six PDF components a b c d e f
func (m Matrix) Components() (a, b, c, d, e, f float64) {
	return m[0][0], m[0][1], m[1][0], m[1][1], m[2][0], m[2][1]
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m == NewMatrix()
}
