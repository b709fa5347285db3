package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box in 2 or 3 dimensions.
// 2D boxes carry z = 0 and ignore the z axis in every test.
type AABB struct {
	Min        mgl64.Vec3
	Max        mgl64.Vec3
	HalfExtent mgl64.Vec3
	Center     mgl64.Vec3
	Dim        int
}

// NewAABB builds a box from its componentwise bounds.
// min must not exceed max on any axis, and dim must be 2 or 3.
func NewAABB(min, max mgl64.Vec3, dim int) AABB {
	if dim != 2 && dim != 3 {
		panic("geom: AABB dimension must be 2 or 3")
	}
	for axis := 0; axis < dim; axis++ {
		if min[axis] > max[axis] {
			panic("geom: AABB min exceeds max")
		}
	}

	halfExtent := max.Sub(min).Mul(0.5)

	return AABB{
		Min:        min,
		Max:        max,
		HalfExtent: halfExtent,
		Center:     min.Add(halfExtent),
		Dim:        dim,
	}
}

// Union bounds both boxes
func Union(a, b AABB) AABB {
	if a.Dim != b.Dim {
		panic("geom: AABB dimension mismatch")
	}

	return NewAABB(MinVec(a.Min, b.Min), MaxVec(a.Max, b.Max), a.Dim)
}

// Union3 bounds three boxes
func Union3(a, b, c AABB) AABB {
	return Union(Union(a, b), c)
}

// Overlapping checks if two AABBs overlap, boundaries included:
// boxes touching exactly at a face, edge or corner count as overlapping
func Overlapping(a, b AABB) bool {
	if a.Dim != b.Dim {
		panic("geom: AABB dimension mismatch")
	}

	// Separating axis test on centers and half-extents
	return math.Abs(a.Center.X()-b.Center.X()) <= a.HalfExtent.X()+b.HalfExtent.X() &&
		math.Abs(a.Center.Y()-b.Center.Y()) <= a.HalfExtent.Y()+b.HalfExtent.Y() &&
		(a.Dim == 2 ||
			math.Abs(a.Center.Z()-b.Center.Z()) <= a.HalfExtent.Z()+b.HalfExtent.Z())
}

// MinVec returns the componentwise minimum of two vectors
func MinVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// MaxVec returns the componentwise maximum of two vectors
func MaxVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}
