package mat

import (
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// Mat3 is a 3x3 matrix. Stored column-major internally; the public API
// (New3 parameter order, At indexing) is row-major. May be singular.
type Mat3[F scalar.Float] struct {
	x, y, z vec.Vec3[F] // columns
}

// New3 constructs a 3x3 matrix from scalars in row-major order, as written
// on paper.
func New3[F scalar.Float](
	r0c0, r0c1, r0c2 F,
	r1c0, r1c1, r1c2 F,
	r2c0, r2c1, r2c2 F,
) Mat3[F] {
	return Mat3[F]{
		x: vec.New3(r0c0, r1c0, r2c0),
		y: vec.New3(r0c1, r1c1, r2c1),
		z: vec.New3(r0c2, r1c2, r2c2),
	}
}

// FromCols3 constructs a 3x3 matrix from its column vectors.
func FromCols3[F scalar.Float](x, y, z vec.Vec3[F]) Mat3[F] {
	return Mat3[F]{x: x, y: y, z: z}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[F scalar.Float]() Mat3[F] {
	return New3[F](
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// At returns the element at (row, col), row-major. Panics when either index
// is outside [0, 2]; an out-of-range index is a programmer error.
func (m Mat3[F]) At(row, col int) F {
	var c vec.Vec3[F]
	switch col {
	case 0:
		c = m.x
	case 1:
		c = m.y
	case 2:
		c = m.z
	default:
		panic("mat: Mat3 index out of range")
	}
	switch row {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.Z
	default:
		panic("mat: Mat3 index out of range")
	}
}

// Transposed returns the transpose of m.
func (m Mat3[F]) Transposed() Mat3[F] {
	return New3(
		m.x.X, m.x.Y, m.x.Z,
		m.y.X, m.y.Y, m.y.Z,
		m.z.X, m.z.Y, m.z.Z,
	)
}

// Determinant returns the determinant of m, computed as the scalar triple
// product of the columns (cofactor expansion along the first row).
func (m Mat3[F]) Determinant() F {
	return m.x.X*(m.y.Y*m.z.Z-m.z.Y*m.y.Z) -
		m.y.X*(m.x.Y*m.z.Z-m.z.Y*m.x.Z) +
		m.z.X*(m.x.Y*m.y.Z-m.y.Y*m.x.Z)
}

// Inverse returns m⁻¹, or ErrSingular when the determinant is exactly zero.
// The inverse is the matrix of cofactor cross products of the columns,
// divided by the determinant, then transposed (the adjugate identity).
func (m Mat3[F]) Inverse() (Mat3[F], error) {
	d := m.Determinant()
	if d == 0 {
		return Mat3[F]{}, ErrSingular
	}
	out := FromCols3(
		m.y.Cross(m.z).Div(d),
		m.z.Cross(m.x).Div(d),
		m.x.Cross(m.y).Div(d),
	)
	return out.Transposed(), nil
}

// Add returns the componentwise sum m + n.
func (m Mat3[F]) Add(n Mat3[F]) Mat3[F] {
	return Mat3[F]{x: m.x.Add(n.x), y: m.y.Add(n.y), z: m.z.Add(n.z)}
}

// Scale returns m with every element multiplied by s.
func (m Mat3[F]) Scale(s F) Mat3[F] {
	return Mat3[F]{x: m.x.Mul(s), y: m.y.Mul(s), z: m.z.Mul(s)}
}

// Mul returns the matrix product m·n.
func (m Mat3[F]) Mul(n Mat3[F]) Mat3[F] {
	return Mat3[F]{
		x: m.MulVec(n.x),
		y: m.MulVec(n.y),
		z: m.MulVec(n.z),
	}
}

// MulVec returns the matrix-vector product m·v.
func (m Mat3[F]) MulVec(v vec.Vec3[F]) vec.Vec3[F] {
	return m.x.Mul(v.X).Add(m.y.Mul(v.Y)).Add(m.z.Mul(v.Z))
}
