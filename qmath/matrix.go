package qmath

import (
	"math"
)

// Matrix44 is a 4x4 single precision transform, stored row major.
// Vectors are treated as columns: transformed = M * v.
type Matrix44 struct {
	m [4][4]float32
}

func NewMatrix44Identity() Matrix44 {
	var r Matrix44
	r.Identity()
	return r
}

func (m *Matrix44) Identity() {
	*m = Matrix44{}
	m.m[0][0] = 1
	m.m[1][1] = 1
	m.m[2][2] = 1
	m.m[3][3] = 1
}

func (m *Matrix44) Get(row, col int) float32 {
	return m.m[row][col]
}

func (m *Matrix44) Set(row, col int, v float32) {
	m.m[row][col] = v
}

// Translate adds the given offset to the translation column.
func (m *Matrix44) Translate(v Vector3f) {
	m.m[0][3] += v.x
	m.m[1][3] += v.y
	m.m[2][3] += v.z
}

// Scale multiplies the x, y and z rows by the given factors.
func (m *Matrix44) Scale(s Vector3f) {
	for i := 0; i < 4; i++ {
		m.m[0][i] *= s.x
		m.m[1][i] *= s.y
		m.m[2][i] *= s.z
	}
}

// PerspFovRH loads a right-handed field-of-view perspective projection.
func (m *Matrix44) PerspFovRH(fovY, aspect, zn, zf float32) {
	h := (float32)(1.0 / math.Tan((float64)(fovY)*0.5))
	w := h / aspect

	*m = Matrix44{}
	m.m[0][0] = w
	m.m[1][1] = h
	m.m[2][2] = zf / (zn - zf)
	m.m[3][2] = -1
	m.m[2][3] = zn * (zf / (zn - zf))
}

func (m Matrix44) Mul(o Matrix44) Matrix44 {
	var r Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.m[i][k] * o.m[k][j]
			}
			r.m[i][j] = sum
		}
	}
	return r
}

func (m Matrix44) MulVec4(v Vector4f) Vector4f {
	in := [4]float32{v.x, v.y, v.z, v.w}
	var out [4]float32
	for i := 0; i < 4; i++ {
		out[i] = m.m[i][0]*in[0] + m.m[i][1]*in[1] + m.m[i][2]*in[2] + m.m[i][3]*in[3]
	}
	return Vector4f{out[0], out[1], out[2], out[3]}
}

// Inverse replaces the matrix with its inverse. A singular matrix is
// left unchanged.
func (m *Matrix44) Inverse() {
	// flatten column major so a[c*4+r] = m[r][c]
	var a [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			a[c*4+r] = m.m[r][c]
		}
	}

	var inv [16]float32

	inv[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] +
		a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	inv[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] -
		a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	inv[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] +
		a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	inv[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] -
		a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]
	inv[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] -
		a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	inv[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] +
		a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	inv[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] -
		a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	inv[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] +
		a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]
	inv[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] +
		a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	inv[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] -
		a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	inv[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] +
		a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	inv[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] -
		a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]
	inv[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] -
		a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	inv[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] +
		a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	inv[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] -
		a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	inv[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] +
		a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	det := a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
	if det == 0 {
		return
	}
	det = 1.0 / det

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.m[r][c] = inv[c*4+r] * det
		}
	}
}
