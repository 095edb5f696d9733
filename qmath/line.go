package qmath

// Line3 is a finite segment between two points. The parametric range
// [0, 1] maps the origin to the end point, so the direction is the full
// displacement and is not normalized.
type Line3 struct {
	from Vector3f
	to   Vector3f
}

func NewLine3(from, to Vector3f) Line3 {
	return Line3{from: from, to: to}
}

func (l Line3) GetOrigin() Vector3f {
	return l.from
}

func (l Line3) GetDirection() Vector3f {
	return Sub(l.to, l.from)
}

// PointAt returns the point at parameter t, with t=0 at the origin and
// t=1 at the end of the segment.
func (l Line3) PointAt(t float32) Vector3f {
	return Add(l.from, Mul(l.GetDirection(), t))
}
