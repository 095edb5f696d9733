package qmath

import (
	"math"
)

// relTolerance is the threshold under which a segment direction
// component is treated as parallel to the box slabs.
const relTolerance = 1e-6

// ClipStatus classifies a box against a view volume.
type ClipStatus int

const (
	Outside ClipStatus = iota
	Inside
	Clipped
)

const (
	clipLeft = 1 << iota
	clipRight
	clipBottom
	clipTop
	clipNear
	clipFar
)

// BBox3 is an axis-aligned box defined by its minimum and maximum corners.
type BBox3 struct {
	min Vector3f
	max Vector3f
}

func NewBBox3(min, max Vector3f) BBox3 {
	return BBox3{min: min, max: max}
}

func NewBBox3FromCenterExtents(center, extents Vector3f) BBox3 {
	return BBox3{
		min: Sub(center, extents),
		max: Add(center, extents),
	}
}

func (b BBox3) GetMin() Vector3f {
	return b.min
}

func (b BBox3) GetMax() Vector3f {
	return b.max
}

func (b BBox3) GetCenter() Vector3f {
	return Mul(Add(b.min, b.max), 0.5)
}

func (b BBox3) GetExtents() Vector3f {
	return Mul(Sub(b.max, b.min), 0.5)
}

func (b BBox3) GetSize() Vector3f {
	return Sub(b.max, b.min)
}

// Contains reports whether other lies fully inside the box on every
// axis. Rejection comparisons are strict, so a box touching the
// boundary still counts as contained.
func (b BBox3) Contains(other BBox3) bool {
	if other.min.x < b.min.x || other.max.x > b.max.x ||
		other.min.y < b.min.y || other.max.y > b.max.y ||
		other.min.z < b.min.z || other.max.z > b.max.z {
		return false
	}
	return true
}

// ClipStatus classifies the box against the view volume of the given
// view-projection matrix. The 8 corners are transformed to clip space
// and tested against the 6 clip planes; a corner fully beyond a plane
// sets that plane's flag. All corners beyond the same plane means
// Outside, no flags at all means Inside, anything else is Clipped.
func (b BBox3) ClipStatus(viewProjection Matrix44) ClipStatus {
	var andFlags uint16 = 0xffff
	var orFlags uint16

	for i := 0; i < 8; i++ {
		var clip uint16
		v0 := Vector4f{w: 1}

		if i&1 != 0 {
			v0.x = b.min.x
		} else {
			v0.x = b.max.x
		}
		if i&2 != 0 {
			v0.y = b.min.y
		} else {
			v0.y = b.max.y
		}
		if i&4 != 0 {
			v0.z = b.min.z
		} else {
			v0.z = b.max.z
		}

		v1 := viewProjection.MulVec4(v0)

		if v1.x < -v1.w {
			clip |= clipLeft
		} else if v1.x > v1.w {
			clip |= clipRight
		}
		if v1.y < -v1.w {
			clip |= clipBottom
		} else if v1.y > v1.w {
			clip |= clipTop
		}
		if v1.z < -v1.w {
			clip |= clipFar
		} else if v1.z > v1.w {
			clip |= clipNear
		}

		andFlags &= clip
		orFlags |= clip
	}

	if orFlags == 0 {
		return Inside
	}
	if andFlags != 0 {
		return Outside
	}
	return Clipped
}

// TestIntersection reports whether the finite segment intersects the
// box, using the per-axis slab method.
func (b BBox3) TestIntersection(line Line3) bool {
	return b.testIntersection(line, nil)
}

// TestIntersectionPoints is TestIntersection but also returns the
// entry and exit points that fall within the segment's range.
func (b BBox3) TestIntersectionPoints(line Line3) ([]Vector3f, bool) {
	var points []Vector3f
	hit := b.testIntersection(line, &points)
	return points, hit
}

func (b BBox3) testIntersection(line Line3, isectPoints *[]Vector3f) bool {
	tNear := (float32)(math.Inf(-1))
	tFar := (float32)(math.Inf(1))

	origin := line.GetOrigin()
	dir := line.GetDirection()

	for i := 0; i < 3; i++ {
		if math.Abs((float64)(dir.at(i))) < relTolerance {
			// Segment is parallel to this axis' slabs; the origin must
			// already lie between them.
			if origin.at(i) < b.min.at(i) || origin.at(i) > b.max.at(i) {
				return false
			}
		} else {
			t1 := (b.min.at(i) - origin.at(i)) / dir.at(i)
			t2 := (b.max.at(i) - origin.at(i)) / dir.at(i)
			if t1 > t2 {
				Swap(&t1, &t2)
			}

			if t1 > tNear {
				tNear = t1
			}
			if t2 < tFar {
				tFar = t2
			}
			if tNear > tFar {
				return false
			}
		}
	}

	if isectPoints != nil {
		if tNear >= 0 && tNear <= 1 {
			*isectPoints = append(*isectPoints, line.PointAt(tNear))
		}
		if tFar >= 0 && tFar <= 1 {
			if math.Abs((float64)(tFar-tNear)) > relTolerance || tNear < 0 || tNear > 1 {
				*isectPoints = append(*isectPoints, line.PointAt(tFar))
			}
		}
	}

	return tNear <= tFar && !(tFar < 0 || tNear > 1)
}
