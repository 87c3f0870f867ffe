package mat

import (
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// Mat2 is a 2x2 matrix. Stored column-major internally; the public API
// (New2 parameter order, At indexing) is row-major. May be singular.
type Mat2[F scalar.Float] struct {
	x, y vec.Vec2[F] // columns
}

// New2 constructs a 2x2 matrix from scalars in row-major order, as written
// on paper.
func New2[F scalar.Float](
	r0c0, r0c1 F,
	r1c0, r1c1 F,
) Mat2[F] {
	return Mat2[F]{
		x: vec.New2(r0c0, r1c0),
		y: vec.New2(r0c1, r1c1),
	}
}

// FromCols2 constructs a 2x2 matrix from its column vectors.
func FromCols2[F scalar.Float](x, y vec.Vec2[F]) Mat2[F] {
	return Mat2[F]{x: x, y: y}
}

// Identity2 returns the 2x2 identity matrix.
func Identity2[F scalar.Float]() Mat2[F] {
	return New2[F](
		1, 0,
		0, 1,
	)
}

// At returns the element at (row, col), row-major. Panics when either index
// is outside [0, 1]; an out-of-range index is a programmer error.
func (m Mat2[F]) At(row, col int) F {
	var c vec.Vec2[F]
	switch col {
	case 0:
		c = m.x
	case 1:
		c = m.y
	default:
		panic("mat: Mat2 index out of range")
	}
	switch row {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		panic("mat: Mat2 index out of range")
	}
}

// Transposed returns the transpose of m.
func (m Mat2[F]) Transposed() Mat2[F] {
	return New2(
		m.x.X, m.x.Y,
		m.y.X, m.y.Y,
	)
}

// Determinant returns the determinant of m.
func (m Mat2[F]) Determinant() F {
	return m.x.X*m.y.Y - m.y.X*m.x.Y
}

// Inverse returns m⁻¹, or ErrSingular when the determinant is exactly zero.
func (m Mat2[F]) Inverse() (Mat2[F], error) {
	d := m.Determinant()
	if d == 0 {
		return Mat2[F]{}, ErrSingular
	}
	return New2(
		m.y.Y/d, -m.y.X/d,
		-m.x.Y/d, m.x.X/d,
	), nil
}

// Add returns the componentwise sum m + n.
func (m Mat2[F]) Add(n Mat2[F]) Mat2[F] {
	return Mat2[F]{x: m.x.Add(n.x), y: m.y.Add(n.y)}
}

// Scale returns m with every element multiplied by s.
func (m Mat2[F]) Scale(s F) Mat2[F] {
	return Mat2[F]{x: m.x.Mul(s), y: m.y.Mul(s)}
}

// Mul returns the matrix product m·n.
func (m Mat2[F]) Mul(n Mat2[F]) Mat2[F] {
	return Mat2[F]{
		x: m.MulVec(n.x),
		y: m.MulVec(n.y),
	}
}

// MulVec returns the matrix-vector product m·v.
func (m Mat2[F]) MulVec(v vec.Vec2[F]) vec.Vec2[F] {
	return m.x.Mul(v.X).Add(m.y.Mul(v.Y))
}
