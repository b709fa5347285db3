package sweep

import (
	"log/slog"
	"math"

	"github.com/akmonengine/sweep/geom"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// ============================================================================
// Types
// ============================================================================

// HashGrid - Uniform spatial hash over the swept extent of a deforming mesh.
// The grid is rebuilt per motion step: Resize, insert the primitives, query
// candidate pairs, then Clear or Resize again for the next step.
type HashGrid struct {
	cellSize  float64
	gridSize  [3]int
	domainMin mgl64.Vec3
	domainMax mgl64.Vec3
	dim       int

	vertexItems []HashItem
	edgeItems   []HashItem
	faceItems   []HashItem

	// Workers bounds the fan-out of the batch insertions.
	// Values below DEFAULT_WORKERS fall back to it.
	Workers int
	// Log, when set, is notified with the grid dimensions after each resize.
	Log *slog.Logger
}

// ============================================================================
// Constructeur
// ============================================================================

// NewHashGrid creates an empty grid for 2 or 3 dimensional meshes.
// 2D meshes carry z = 0 on every position.
func NewHashGrid(dim int) *HashGrid {
	if dim != 2 && dim != 3 {
		panic("sweep: grid dimension must be 2 or 3")
	}
	return &HashGrid{dim: dim, Workers: DEFAULT_WORKERS}
}

func (g *HashGrid) Dim() int              { return g.dim }
func (g *HashGrid) CellSize() float64     { return g.cellSize }
func (g *HashGrid) GridSize() [3]int      { return g.gridSize }
func (g *HashGrid) DomainMin() mgl64.Vec3 { return g.domainMin }
func (g *HashGrid) DomainMax() mgl64.Vec3 { return g.domainMax }

// Clear drops every inserted item, keeping the domain configuration.
func (g *HashGrid) Clear() {
	g.vertexItems = g.vertexItems[:0]
	g.edgeItems = g.edgeItems[:0]
	g.faceItems = g.faceItems[:0]
}

// ============================================================================
// Resize
// ============================================================================

// Resize clears the grid and reconfigures it over the given domain.
// cellSize must be positive.
func (g *HashGrid) Resize(lower, upper mgl64.Vec3, cellSize float64) {
	g.Clear()
	if cellSize <= 0 {
		panic("sweep: cell size must be positive")
	}
	g.cellSize = cellSize
	g.domainMin = lower
	g.domainMax = upper

	g.gridSize = [3]int{1, 1, 1}
	for axis := 0; axis < g.dim; axis++ {
		g.gridSize[axis] = max(int(math.Ceil((upper[axis]-lower[axis])/cellSize)), 1)
	}

	if g.Log != nil {
		g.Log.Debug("hash grid resized",
			"x", g.gridSize[0], "y", g.gridSize[1], "z", g.gridSize[2])
	}
}

// ResizeFromMesh applies the cell sizing heuristic before resizing: cells
// sized near the larger of the average edge length and the average
// displacement keep the expected per-cell occupancy close to O(1), which
// bounds the cost of the pair join. The domain is the mesh extents expanded
// by inflationRadius on both ends.
func (g *HashGrid) ResizeFromMesh(verticesT0, verticesT1 []mgl64.Vec3, edges [][2]int, inflationRadius float64) {
	if len(verticesT0) != len(verticesT1) {
		panic("sweep: vertex counts differ between time samples")
	}

	meshMin, meshMax := MeshExtents(verticesT0, verticesT1)
	edgeLength := AverageEdgeLength(verticesT0, verticesT1, edges)
	displacement := AverageDisplacementLength(verticesT0, verticesT1)
	cellSize := 2*max(edgeLength, displacement) + inflationRadius

	inflation := mgl64.Vec3{inflationRadius, inflationRadius, inflationRadius}
	g.Resize(meshMin.Sub(inflation), meshMax.Add(inflation), cellSize)
}

// ============================================================================
// Insertion
// ============================================================================

// AddVertex inserts the swept box of one vertex.
func (g *HashGrid) AddVertex(vertexT0, vertexT1 mgl64.Vec3, index int, inflationRadius float64) {
	g.addVertex(vertexT0, vertexT1, index, &g.vertexItems, inflationRadius)
}

func (g *HashGrid) addVertex(vertexT0, vertexT1 mgl64.Vec3, index int, items *[]HashItem, inflationRadius float64) {
	lower, upper := geom.VertexExtents(vertexT0, vertexT1)
	g.addElement(g.inflatedBox(lower, upper, inflationRadius), index, items)
}

// AddVertices inserts the swept box of every vertex, in parallel.
func (g *HashGrid) AddVertices(verticesT0, verticesT1 []mgl64.Vec3, inflationRadius float64) {
	if len(verticesT0) != len(verticesT1) {
		panic("sweep: vertex counts differ between time samples")
	}

	taskCollect(g.workers(), len(verticesT0), &g.vertexItems, func(start, end int, local *[]HashItem) {
		for i := start; i < end; i++ {
			g.addVertex(verticesT0[i], verticesT1[i], i, local, inflationRadius)
		}
	})
}

// AddVerticesFromEdges inserts the swept box of every vertex referenced by
// the edge connectivity. A vertex appears in every incident edge, so it is
// attributed to its lowest incident edge index and inserted exactly once.
func (g *HashGrid) AddVerticesFromEdges(verticesT0, verticesT1 []mgl64.Vec3, edges [][2]int, inflationRadius float64) {
	if len(verticesT0) != len(verticesT1) {
		panic("sweep: vertex counts differ between time samples")
	}

	vertexToMinEdge := make([]int, len(verticesT0))
	for vi := range vertexToMinEdge {
		vertexToMinEdge[vi] = len(edges)
	}
	for ei, edge := range edges {
		for _, vi := range edge {
			if ei < vertexToMinEdge[vi] {
				vertexToMinEdge[vi] = ei
			}
		}
	}

	taskCollect(g.workers(), len(edges), &g.vertexItems, func(start, end int, local *[]HashItem) {
		for ei := start; ei < end; ei++ {
			for _, vi := range edges[ei] {
				if vertexToMinEdge[vi] == ei {
					g.addVertex(verticesT0[vi], verticesT1[vi], vi, local, inflationRadius)
				}
			}
		}
	})
}

// AddEdge inserts the swept box of one edge.
func (g *HashGrid) AddEdge(a0, b0, a1, b1 mgl64.Vec3, index int, inflationRadius float64) {
	g.addEdge(a0, b0, a1, b1, index, &g.edgeItems, inflationRadius)
}

func (g *HashGrid) addEdge(a0, b0, a1, b1 mgl64.Vec3, index int, items *[]HashItem, inflationRadius float64) {
	lower, upper := geom.EdgeExtents(a0, b0, a1, b1)
	g.addElement(g.inflatedBox(lower, upper, inflationRadius), index, items)
}

// AddEdges inserts the swept box of every edge, in parallel.
func (g *HashGrid) AddEdges(verticesT0, verticesT1 []mgl64.Vec3, edges [][2]int, inflationRadius float64) {
	if len(verticesT0) != len(verticesT1) {
		panic("sweep: vertex counts differ between time samples")
	}

	taskCollect(g.workers(), len(edges), &g.edgeItems, func(start, end int, local *[]HashItem) {
		for i := start; i < end; i++ {
			edge := edges[i]
			g.addEdge(
				verticesT0[edge[0]], verticesT0[edge[1]],
				verticesT1[edge[0]], verticesT1[edge[1]],
				i, local, inflationRadius)
		}
	})
}

// AddFace inserts the swept box of one triangular face.
func (g *HashGrid) AddFace(a0, b0, c0, a1, b1, c1 mgl64.Vec3, index int, inflationRadius float64) {
	g.addFace(a0, b0, c0, a1, b1, c1, index, &g.faceItems, inflationRadius)
}

func (g *HashGrid) addFace(a0, b0, c0, a1, b1, c1 mgl64.Vec3, index int, items *[]HashItem, inflationRadius float64) {
	lower, upper := geom.FaceExtents(a0, b0, c0, a1, b1, c1)
	g.addElement(g.inflatedBox(lower, upper, inflationRadius), index, items)
}

// AddFaces inserts the swept box of every face, in parallel.
func (g *HashGrid) AddFaces(verticesT0, verticesT1 []mgl64.Vec3, faces [][3]int, inflationRadius float64) {
	if len(verticesT0) != len(verticesT1) {
		panic("sweep: vertex counts differ between time samples")
	}

	taskCollect(g.workers(), len(faces), &g.faceItems, func(start, end int, local *[]HashItem) {
		for i := start; i < end; i++ {
			face := faces[i]
			g.addFace(
				verticesT0[face[0]], verticesT0[face[1]], verticesT0[face[2]],
				verticesT1[face[0]], verticesT1[face[1]], verticesT1[face[2]],
				i, local, inflationRadius)
		}
	})
}

// ============================================================================
// Cell mapping
// ============================================================================

func (g *HashGrid) inflatedBox(lower, upper mgl64.Vec3, inflationRadius float64) geom.AABB {
	inflation := mgl64.Vec3{inflationRadius, inflationRadius, inflationRadius}
	return geom.NewAABB(lower.Sub(inflation), upper.Add(inflation), g.dim)
}

// addElement emits one HashItem per grid cell covered by the box.
func (g *HashGrid) addElement(box geom.AABB, id int, items *[]HashItem) {
	minCell := g.cellCoords(box.Min)
	maxCell := g.cellCoords(box.Max)

	for x := minCell[0]; x <= maxCell[0]; x++ {
		for y := minCell[1]; y <= maxCell[1]; y++ {
			for z := minCell[2]; z <= maxCell[2]; z++ {
				*items = append(*items, HashItem{Key: g.hash(x, y, z), ID: id, Box: box})
			}
		}
	}
}

// cellCoords maps a position into grid coordinates. Floating-point rounding
// may land one cell outside the domain; those coordinates are clamped back
// into range. z stays 0 for 2D grids.
func (g *HashGrid) cellCoords(position mgl64.Vec3) [3]int {
	var cell [3]int
	for axis := 0; axis < g.dim; axis++ {
		c := int(math.Floor((position[axis] - g.domainMin[axis]) / g.cellSize))
		cell[axis] = min(max(c, 0), g.gridSize[axis]-1)
	}
	return cell
}

// hash computes the row-major key of a cell location.
// Coordinates must already be inside the grid.
func (g *HashGrid) hash(x, y, z int) int {
	if x < 0 || y < 0 || z < 0 ||
		x >= g.gridSize[0] || y >= g.gridSize[1] || z >= g.gridSize[2] {
		panic("sweep: cell coordinates out of grid range")
	}
	return (z*g.gridSize[1]+y)*g.gridSize[0] + x
}

func (g *HashGrid) workers() int {
	return max(DEFAULT_WORKERS, g.Workers)
}
