package geom

import "github.com/go-gl/mathgl/mgl64"

// VertexExtents bounds a vertex moving between two time samples
// (i.e. a temporal edge).
func VertexExtents(vertexT0, vertexT1 mgl64.Vec3) (lower, upper mgl64.Vec3) {
	return MinVec(vertexT0, vertexT1), MaxVec(vertexT0, vertexT1)
}

// EdgeExtents bounds an edge moving between two time samples
// (i.e. a temporal quad).
func EdgeExtents(a0, b0, a1, b1 mgl64.Vec3) (lower, upper mgl64.Vec3) {
	lower = MinVec(MinVec(a0, b0), MinVec(a1, b1))
	upper = MaxVec(MaxVec(a0, b0), MaxVec(a1, b1))
	return lower, upper
}

// FaceExtents bounds a triangle moving between two time samples
// (i.e. a temporal prism).
func FaceExtents(a0, b0, c0, a1, b1, c1 mgl64.Vec3) (lower, upper mgl64.Vec3) {
	lower = MinVec(MinVec(MinVec(a0, b0), MinVec(c0, a1)), MinVec(b1, c1))
	upper = MaxVec(MaxVec(MaxVec(a0, b0), MaxVec(c0, a1)), MaxVec(b1, c1))
	return lower, upper
}
