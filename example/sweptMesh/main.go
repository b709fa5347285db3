package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/akmonengine/sweep"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	// Two triangles: one resting in the z=0 plane, one dropping onto it
	// during the motion step
	verticesT0 := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{0.25, 0.25, 0.5}, {1.25, 0.25, 0.5}, {0.25, 1.25, 0.5},
	}
	verticesT1 := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{0.25, 0.25, 0}, {1.25, 0.25, 0}, {0.25, 1.25, 0},
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	faces := [][3]int{{0, 1, 2}, {3, 4, 5}}
	// One group per triangle: self-collision inside a triangle is suppressed
	groups := []int{1, 1, 1, 2, 2, 2}

	grid := sweep.NewHashGrid(3)
	grid.Workers = 4
	grid.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	candidates := sweep.BroadPhase(grid, verticesT0, verticesT1, edges, faces, groups, 0.01)

	fmt.Printf("grid: %v cells of size %.3f\n", grid.GridSize(), grid.CellSize())
	fmt.Printf("candidates: %d\n", candidates.Count())

	for _, c := range candidates.EdgeVertex {
		fmt.Printf("  edge %d - vertex %d\n", c.EdgeIndex, c.VertexIndex)
	}
	for _, c := range candidates.EdgeEdge {
		fmt.Printf("  edge %d - edge %d\n", c.Edge0Index, c.Edge1Index)
	}
	for _, c := range candidates.EdgeFace {
		fmt.Printf("  edge %d - face %d\n", c.EdgeIndex, c.FaceIndex)
	}
	for _, c := range candidates.FaceVertex {
		fmt.Printf("  face %d - vertex %d\n", c.FaceIndex, c.VertexIndex)
	}

	// A narrow phase would now compute exact distances and times of impact
	// for each candidate pair; everything above is conservative
}
