package sweep

import (
	"math"

	"github.com/akmonengine/sweep/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// MeshExtents bounds every vertex position across both time samples.
func MeshExtents(verticesT0, verticesT1 []mgl64.Vec3) (lower, upper mgl64.Vec3) {
	if len(verticesT0) != len(verticesT1) {
		panic("sweep: vertex counts differ between time samples")
	}

	lower = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	upper = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := range verticesT0 {
		lower = geom.MinVec(lower, geom.MinVec(verticesT0[i], verticesT1[i]))
		upper = geom.MaxVec(upper, geom.MaxVec(verticesT0[i], verticesT1[i]))
	}
	return lower, upper
}

// AverageEdgeLength is the mean Euclidean edge length over all edges and
// both time samples. A mesh without edges averages to 0.
func AverageEdgeLength(verticesT0, verticesT1 []mgl64.Vec3, edges [][2]int) float64 {
	if len(edges) == 0 {
		return 0
	}

	sum := 0.0
	for _, edge := range edges {
		sum += verticesT0[edge[0]].Sub(verticesT0[edge[1]]).Len()
		sum += verticesT1[edge[0]].Sub(verticesT1[edge[1]]).Len()
	}
	return sum / float64(2*len(edges))
}

// AverageDisplacementLength is the mean Euclidean norm of the per-vertex
// displacement between the two time samples.
func AverageDisplacementLength(verticesT0, verticesT1 []mgl64.Vec3) float64 {
	if len(verticesT0) == 0 {
		return 0
	}

	sum := 0.0
	for i := range verticesT0 {
		sum += verticesT1[i].Sub(verticesT0[i]).Len()
	}
	return sum / float64(len(verticesT0))
}
