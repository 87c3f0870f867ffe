package mat

import (
	"github.com/qvetlan/linrot/scalar"
	"github.com/qvetlan/linrot/vec"
)

// Mat4 is a 4x4 matrix. Stored column-major internally; the public API
// (New4 parameter order, At indexing) is row-major. May be singular.
type Mat4[F scalar.Float] struct {
	x, y, z, p vec.Vec4[F] // columns
}

// New4 constructs a 4x4 matrix from scalars in row-major order, as written
// on paper.
func New4[F scalar.Float](
	r0c0, r0c1, r0c2, r0c3 F,
	r1c0, r1c1, r1c2, r1c3 F,
	r2c0, r2c1, r2c2, r2c3 F,
	r3c0, r3c1, r3c2, r3c3 F,
) Mat4[F] {
	return Mat4[F]{
		x: vec.New4(r0c0, r1c0, r2c0, r3c0),
		y: vec.New4(r0c1, r1c1, r2c1, r3c1),
		z: vec.New4(r0c2, r1c2, r2c2, r3c2),
		p: vec.New4(r0c3, r1c3, r2c3, r3c3),
	}
}

// FromCols4 constructs a 4x4 matrix from its column vectors.
func FromCols4[F scalar.Float](x, y, z, p vec.Vec4[F]) Mat4[F] {
	return Mat4[F]{x: x, y: y, z: z, p: p}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[F scalar.Float]() Mat4[F] {
	return New4[F](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// At returns the element at (row, col), row-major. Panics when either index
// is outside [0, 3]; an out-of-range index is a programmer error.
func (m Mat4[F]) At(row, col int) F {
	var c vec.Vec4[F]
	switch col {
	case 0:
		c = m.x
	case 1:
		c = m.y
	case 2:
		c = m.z
	case 3:
		c = m.p
	default:
		panic("mat: Mat4 index out of range")
	}
	switch row {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.Z
	case 3:
		return c.W
	default:
		panic("mat: Mat4 index out of range")
	}
}

// Transposed returns the transpose of m.
func (m Mat4[F]) Transposed() Mat4[F] {
	return New4(
		m.x.X, m.x.Y, m.x.Z, m.x.W,
		m.y.X, m.y.Y, m.y.Z, m.y.W,
		m.z.X, m.z.Y, m.z.Z, m.z.W,
		m.p.X, m.p.Y, m.p.Z, m.p.W,
	)
}

// Determinant returns the determinant of m, by cofactor expansion of the
// first row into four 3x3 minors.
func (m Mat4[F]) Determinant() F {
	return m.x.X*New3(
		m.y.Y, m.z.Y, m.p.Y,
		m.y.Z, m.z.Z, m.p.Z,
		m.y.W, m.z.W, m.p.W,
	).Determinant() -
		m.y.X*New3(
			m.x.Y, m.z.Y, m.p.Y,
			m.x.Z, m.z.Z, m.p.Z,
			m.x.W, m.z.W, m.p.W,
		).Determinant() +
		m.z.X*New3(
			m.x.Y, m.y.Y, m.p.Y,
			m.x.Z, m.y.Z, m.p.Z,
			m.x.W, m.y.W, m.p.W,
		).Determinant() -
		m.p.X*New3(
			m.x.Y, m.y.Y, m.z.Y,
			m.x.Z, m.y.Z, m.z.Z,
			m.x.W, m.y.W, m.z.W,
		).Determinant()
}

// Inverse returns m⁻¹, or ErrSingular when the determinant is exactly zero.
// Built from the cofactor matrix of the transpose divided by the
// determinant (adjugate identity).
func (m Mat4[F]) Inverse() (Mat4[F], error) {
	d := m.Determinant()
	if d == 0 {
		return Mat4[F]{}, ErrSingular
	}
	id := 1 / d
	t := m.Transposed()

	// cf is the (i,j) cofactor of t scaled by 1/det: the 3x3 minor that
	// excludes column i and row j, with the checkerboard sign applied.
	cf := func(i, j int) F {
		var minor Mat3[F]
		switch i {
		case 0:
			minor = FromCols3(t.y.TruncateN(j), t.z.TruncateN(j), t.p.TruncateN(j))
		case 1:
			minor = FromCols3(t.x.TruncateN(j), t.z.TruncateN(j), t.p.TruncateN(j))
		case 2:
			minor = FromCols3(t.x.TruncateN(j), t.y.TruncateN(j), t.p.TruncateN(j))
		case 3:
			minor = FromCols3(t.x.TruncateN(j), t.y.TruncateN(j), t.z.TruncateN(j))
		default:
			panic("mat: cofactor index out of range")
		}
		sign := F(1)
		if (i+j)&1 == 1 {
			sign = -1
		}
		return minor.Determinant() * sign * id
	}

	return New4(
		cf(0, 0), cf(1, 0), cf(2, 0), cf(3, 0),
		cf(0, 1), cf(1, 1), cf(2, 1), cf(3, 1),
		cf(0, 2), cf(1, 2), cf(2, 2), cf(3, 2),
		cf(0, 3), cf(1, 3), cf(2, 3), cf(3, 3),
	), nil
}

// Add returns the componentwise sum m + n.
func (m Mat4[F]) Add(n Mat4[F]) Mat4[F] {
	return Mat4[F]{x: m.x.Add(n.x), y: m.y.Add(n.y), z: m.z.Add(n.z), p: m.p.Add(n.p)}
}

// Scale returns m with every element multiplied by s.
func (m Mat4[F]) Scale(s F) Mat4[F] {
	return Mat4[F]{x: m.x.Mul(s), y: m.y.Mul(s), z: m.z.Mul(s), p: m.p.Mul(s)}
}

// Mul returns the matrix product m·n.
func (m Mat4[F]) Mul(n Mat4[F]) Mat4[F] {
	return Mat4[F]{
		x: m.MulVec(n.x),
		y: m.MulVec(n.y),
		z: m.MulVec(n.z),
		p: m.MulVec(n.p),
	}
}

// MulVec returns the matrix-vector product m·v.
func (m Mat4[F]) MulVec(v vec.Vec4[F]) vec.Vec4[F] {
	return m.x.Mul(v.X).Add(m.y.Mul(v.Y)).Add(m.z.Mul(v.Z)).Add(m.p.Mul(v.W))
}
