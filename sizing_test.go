package sweep

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMeshExtents(t *testing.T) {
	verticesT0 := []mgl64.Vec3{{0, 0, 0}, {1, 2, 3}}
	verticesT1 := []mgl64.Vec3{{-1, 0, 4}, {1, 1, 3}}

	lower, upper := MeshExtents(verticesT0, verticesT1)

	if lower != (mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("lower = %v, want {-1 0 0}", lower)
	}
	if upper != (mgl64.Vec3{1, 2, 4}) {
		t.Errorf("upper = %v, want {1 2 4}", upper)
	}
}

func TestMeshExtentsMismatchedCountsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for mismatched vertex counts")
		}
	}()

	MeshExtents([]mgl64.Vec3{{0, 0, 0}}, nil)
}

func TestAverageEdgeLength(t *testing.T) {
	verticesT0 := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	// The mesh stretches at t1: both edges double in length
	verticesT1 := []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}}
	edges := [][2]int{{0, 1}, {1, 2}}

	// Lengths: 1, 1 at t0 and 2, 2 at t1, averaged over 4 samples
	if got := AverageEdgeLength(verticesT0, verticesT1, edges); got != 1.5 {
		t.Errorf("AverageEdgeLength = %v, want 1.5", got)
	}
}

func TestAverageEdgeLengthNoEdges(t *testing.T) {
	vertices := []mgl64.Vec3{{0, 0, 0}}

	if got := AverageEdgeLength(vertices, vertices, nil); got != 0 {
		t.Errorf("AverageEdgeLength = %v, want 0", got)
	}
}

func TestAverageDisplacementLength(t *testing.T) {
	verticesT0 := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}
	verticesT1 := []mgl64.Vec3{{0, 0, 2}, {1, 4, 0}}

	// Displacements: 2 and 4, mean 3
	if got := AverageDisplacementLength(verticesT0, verticesT1); got != 3 {
		t.Errorf("AverageDisplacementLength = %v, want 3", got)
	}
}

func TestResizeFromMesh(t *testing.T) {
	// One static unit edge: avg edge length 1, avg displacement 0
	vertices := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}
	edges := [][2]int{{0, 1}}

	grid := NewHashGrid(3)
	grid.ResizeFromMesh(vertices, vertices, edges, 0)

	if grid.CellSize() != 2 {
		t.Errorf("CellSize() = %v, want 2", grid.CellSize())
	}
	if grid.GridSize() != [3]int{1, 1, 1} {
		t.Errorf("GridSize() = %v, want [1 1 1]", grid.GridSize())
	}
	if grid.DomainMin() != (mgl64.Vec3{0, 0, 0}) || grid.DomainMax() != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("domain = [%v, %v], want [{0 0 0}, {1 0 0}]", grid.DomainMin(), grid.DomainMax())
	}
}

func TestResizeFromMeshInflation(t *testing.T) {
	vertices := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}
	edges := [][2]int{{0, 1}}

	grid := NewHashGrid(3)
	grid.ResizeFromMesh(vertices, vertices, edges, 0.5)

	// cellSize = 2*max(1, 0) + 0.5, domain expanded by 0.5 on both ends
	if grid.CellSize() != 2.5 {
		t.Errorf("CellSize() = %v, want 2.5", grid.CellSize())
	}
	if grid.DomainMin() != (mgl64.Vec3{-0.5, -0.5, -0.5}) {
		t.Errorf("DomainMin() = %v, want {-0.5 -0.5 -0.5}", grid.DomainMin())
	}
	if grid.DomainMax() != (mgl64.Vec3{1.5, 0.5, 0.5}) {
		t.Errorf("DomainMax() = %v, want {1.5 0.5 0.5}", grid.DomainMax())
	}
}

func TestResizeFromMeshMotionDominated(t *testing.T) {
	// Vertices move much further than the edge length: the displacement
	// term drives the cell size
	verticesT0 := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}
	verticesT1 := []mgl64.Vec3{{0, 10, 0}, {1, 10, 0}}
	edges := [][2]int{{0, 1}}

	grid := NewHashGrid(3)
	grid.ResizeFromMesh(verticesT0, verticesT1, edges, 0)

	if grid.CellSize() != 20 {
		t.Errorf("CellSize() = %v, want 20", grid.CellSize())
	}
	if grid.GridSize() != [3]int{1, 1, 1} {
		t.Errorf("GridSize() = %v, want [1 1 1]", grid.GridSize())
	}
}
