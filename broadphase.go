package sweep

import "github.com/go-gl/mathgl/mgl64"

// Candidates aggregates the four candidate lists of one broad-phase sweep.
// Every list is sorted and deduplicated; a narrow phase decides true contacts.
type Candidates struct {
	EdgeVertex []EdgeVertexCandidate
	EdgeEdge   []EdgeEdgeCandidate
	EdgeFace   []EdgeFaceCandidate
	FaceVertex []FaceVertexCandidate
}

// Count returns the total number of candidate pairs.
func (c Candidates) Count() int {
	return len(c.EdgeVertex) + len(c.EdgeEdge) + len(c.EdgeFace) + len(c.FaceVertex)
}

// BroadPhase runs one full sweep over a motion step: size the grid from the
// mesh statistics, insert every primitive and query all pair types.
// Vertices are derived from the edge connectivity; face queries are skipped
// for meshes without faces.
func BroadPhase(grid *HashGrid, verticesT0, verticesT1 []mgl64.Vec3, edges [][2]int, faces [][3]int, groups []int, inflationRadius float64) Candidates {
	grid.ResizeFromMesh(verticesT0, verticesT1, edges, inflationRadius)
	grid.AddVerticesFromEdges(verticesT0, verticesT1, edges, inflationRadius)
	grid.AddEdges(verticesT0, verticesT1, edges, inflationRadius)
	grid.AddFaces(verticesT0, verticesT1, faces, inflationRadius)

	candidates := Candidates{
		EdgeVertex: grid.VertexEdgePairs(edges, groups),
		EdgeEdge:   grid.EdgeEdgePairs(edges, groups),
	}
	if len(faces) > 0 {
		candidates.EdgeFace = grid.EdgeFacePairs(edges, faces, groups)
		candidates.FaceVertex = grid.FaceVertexPairs(faces, groups)
	}
	return candidates
}
