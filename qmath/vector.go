package qmath

import (
	"math"
)

func Swap(a *float32, b *float32) {
	*a, *b = *b, *a
}

func EqualWithEpsilon(a float32, b float32, epsilon float64) bool {
	return math.Abs((float64)(a-b)) <= epsilon
}

// Vector3f is a 3-component single precision vector.
type Vector3f struct {
	x float32
	y float32
	z float32
}

func NewVector3f(x, y, z float32) Vector3f {
	return Vector3f{x, y, z}
}

func (v Vector3f) GetX() float32 {
	return v.x
}

func (v Vector3f) GetY() float32 {
	return v.y
}

func (v Vector3f) GetZ() float32 {
	return v.z
}

// at returns the component on the given axis (0=x, 1=y, 2=z).
func (v Vector3f) at(axis int) float32 {
	switch axis {
	case 0:
		return v.x
	case 1:
		return v.y
	default:
		return v.z
	}
}

func (v1 Vector3f) Equal(v2 Vector3f) bool {
	return v1.x == v2.x && v1.y == v2.y && v1.z == v2.z
}

func (v1 Vector3f) EqualWithEpsilon(v2 Vector3f, epsilon float64) bool {
	return math.Abs((float64)(v1.x-v2.x)) <= epsilon &&
		math.Abs((float64)(v1.y-v2.y)) <= epsilon &&
		math.Abs((float64)(v1.z-v2.z)) <= epsilon
}

func Add(a Vector3f, b Vector3f) Vector3f {
	return Vector3f{a.x + b.x, a.y + b.y, a.z + b.z}
}

func Sub(a Vector3f, b Vector3f) Vector3f {
	return Vector3f{a.x - b.x, a.y - b.y, a.z - b.z}
}

func Mul(a Vector3f, s float32) Vector3f {
	return Vector3f{a.x * s, a.y * s, a.z * s}
}

// Vector4f is a homogeneous 4-component vector used for clip space math.
type Vector4f struct {
	x float32
	y float32
	z float32
	w float32
}

func NewVector4f(x, y, z, w float32) Vector4f {
	return Vector4f{x, y, z, w}
}

func (v Vector4f) GetX() float32 {
	return v.x
}

func (v Vector4f) GetY() float32 {
	return v.y
}

func (v Vector4f) GetZ() float32 {
	return v.z
}

func (v Vector4f) GetW() float32 {
	return v.w
}
