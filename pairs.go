package sweep

import (
	"sort"

	"github.com/akmonengine/sweep/geom"
)

// ============================================================================
// Candidate types
// ============================================================================

// EdgeVertexCandidate - an edge and a vertex whose swept boxes overlap
type EdgeVertexCandidate struct {
	EdgeIndex   int
	VertexIndex int
}

// EdgeEdgeCandidate - two edges whose swept boxes overlap, Edge0Index < Edge1Index
type EdgeEdgeCandidate struct {
	Edge0Index int
	Edge1Index int
}

// EdgeFaceCandidate - an edge and a face whose swept boxes overlap
type EdgeFaceCandidate struct {
	EdgeIndex int
	FaceIndex int
}

// FaceVertexCandidate - a face and a vertex whose swept boxes overlap
type FaceVertexCandidate struct {
	FaceIndex   int
	VertexIndex int
}

// indexPair is the raw join output, converted to typed candidates by the
// public queries.
type indexPair struct {
	id0, id1 int
}

func (p indexPair) less(other indexPair) bool {
	if p.id0 == other.id0 {
		return p.id1 < other.id1
	}
	return p.id0 < other.id0
}

// ============================================================================
// Merge-join
// ============================================================================

func sortItems(items []HashItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].Less(items[j]) })
}

// joinPairs merge-joins two buckets on equal cell keys. Sorting makes every
// equal-key run contiguous, so the sweep advances the list with the smaller
// key and forms cross pairs only inside matching runs. A pair is emitted
// when it is not topologically adjacent, not excluded by group, and its
// boxes truly overlap: sharing a cell is necessary but not sufficient.
func joinPairs(items0, items1 []HashItem, isEndpoint, isSameGroup func(id0, id1 int) bool) []indexPair {
	sortItems(items0)
	sortItems(items1)

	pairs := make([]indexPair, 0)
	i, j := 0, 0
	for i < len(items0) && j < len(items1) {
		switch {
		case items0[i].Key < items1[j].Key:
			i++
		case items0[i].Key > items1[j].Key:
			j++
		default:
			key := items0[i].Key
			iEnd, jEnd := i, j
			for iEnd < len(items0) && items0[iEnd].Key == key {
				iEnd++
			}
			for jEnd < len(items1) && items1[jEnd].Key == key {
				jEnd++
			}

			for a := i; a < iEnd; a++ {
				item0 := items0[a]
				for b := j; b < jEnd; b++ {
					item1 := items1[b]
					if !isEndpoint(item0.ID, item1.ID) && !isSameGroup(item0.ID, item1.ID) &&
						geom.Overlapping(item0.Box, item1.Box) {
						pairs = append(pairs, indexPair{item0.ID, item1.ID})
					}
				}
			}
			i, j = iEnd, jEnd
		}
	}

	return dedupPairs(pairs)
}

// selfJoinPairs joins one bucket against itself. The inner scan starts at
// i+1 and stops when keys diverge, so no self pair is formed and ids are
// ascending within an equal-key run: emitted pairs satisfy id0 < id1, which
// canonicalizes the symmetric duplicates.
func selfJoinPairs(items []HashItem, isEndpoint, isSameGroup func(id0, id1 int) bool) []indexPair {
	sortItems(items)

	pairs := make([]indexPair, 0)
	for i := 0; i < len(items); i++ {
		item0 := items[i]
		for j := i + 1; j < len(items) && items[j].Key == item0.Key; j++ {
			item1 := items[j]
			if !isEndpoint(item0.ID, item1.ID) && !isSameGroup(item0.ID, item1.ID) &&
				geom.Overlapping(item0.Box, item1.Box) {
				pairs = append(pairs, indexPair{item0.ID, item1.ID})
			}
		}
	}

	return dedupPairs(pairs)
}

// dedupPairs removes the duplicates produced by primitive pairs sharing
// more than one cell.
func dedupPairs(pairs []indexPair) []indexPair {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].less(pairs[j]) })

	deduped := pairs[:0]
	for i, pair := range pairs {
		if i > 0 && pair == pairs[i-1] {
			continue
		}
		deduped = append(deduped, pair)
	}
	return deduped
}

// ============================================================================
// Pair queries
// ============================================================================

// VertexEdgePairs returns the deduplicated edge-vertex candidates.
// An edge is never paired with its own endpoints; when groups is non-empty,
// a vertex sharing a group id with either endpoint is excluded.
func (g *HashGrid) VertexEdgePairs(edges [][2]int, groups []int) []EdgeVertexCandidate {
	isEndpoint := func(ei, vi int) bool {
		return edges[ei][0] == vi || edges[ei][1] == vi
	}

	checkGroups := len(groups) > 0
	isSameGroup := func(ei, vi int) bool {
		return checkGroups &&
			(groups[vi] == groups[edges[ei][0]] || groups[vi] == groups[edges[ei][1]])
	}

	pairs := joinPairs(g.edgeItems, g.vertexItems, isEndpoint, isSameGroup)

	candidates := make([]EdgeVertexCandidate, len(pairs))
	for i, pair := range pairs {
		candidates[i] = EdgeVertexCandidate{EdgeIndex: pair.id0, VertexIndex: pair.id1}
	}
	return candidates
}

// EdgeEdgePairs returns the deduplicated edge-edge candidates.
// Edges sharing an endpoint vertex are never paired; when groups is
// non-empty, edges with any matching endpoint group are excluded.
func (g *HashGrid) EdgeEdgePairs(edges [][2]int, groups []int) []EdgeEdgeCandidate {
	isEndpoint := func(ei, ej int) bool {
		return edges[ei][0] == edges[ej][0] || edges[ei][0] == edges[ej][1] ||
			edges[ei][1] == edges[ej][0] || edges[ei][1] == edges[ej][1]
	}

	checkGroups := len(groups) > 0
	isSameGroup := func(ei, ej int) bool {
		return checkGroups &&
			(groups[edges[ei][0]] == groups[edges[ej][0]] ||
				groups[edges[ei][0]] == groups[edges[ej][1]] ||
				groups[edges[ei][1]] == groups[edges[ej][0]] ||
				groups[edges[ei][1]] == groups[edges[ej][1]])
	}

	pairs := selfJoinPairs(g.edgeItems, isEndpoint, isSameGroup)

	candidates := make([]EdgeEdgeCandidate, len(pairs))
	for i, pair := range pairs {
		candidates[i] = EdgeEdgeCandidate{Edge0Index: pair.id0, Edge1Index: pair.id1}
	}
	return candidates
}

// EdgeFacePairs returns the deduplicated edge-face candidates.
// An edge with an endpoint among the face's vertices is never paired; when
// groups is non-empty, any endpoint/face-vertex group match excludes.
func (g *HashGrid) EdgeFacePairs(edges [][2]int, faces [][3]int, groups []int) []EdgeFaceCandidate {
	isEndpoint := func(ei, fi int) bool {
		return edges[ei][0] == faces[fi][0] || edges[ei][0] == faces[fi][1] ||
			edges[ei][0] == faces[fi][2] || edges[ei][1] == faces[fi][0] ||
			edges[ei][1] == faces[fi][1] || edges[ei][1] == faces[fi][2]
	}

	checkGroups := len(groups) > 0
	isSameGroup := func(ei, fi int) bool {
		return checkGroups &&
			(groups[edges[ei][0]] == groups[faces[fi][0]] ||
				groups[edges[ei][0]] == groups[faces[fi][1]] ||
				groups[edges[ei][0]] == groups[faces[fi][2]] ||
				groups[edges[ei][1]] == groups[faces[fi][0]] ||
				groups[edges[ei][1]] == groups[faces[fi][1]] ||
				groups[edges[ei][1]] == groups[faces[fi][2]])
	}

	pairs := joinPairs(g.edgeItems, g.faceItems, isEndpoint, isSameGroup)

	candidates := make([]EdgeFaceCandidate, len(pairs))
	for i, pair := range pairs {
		candidates[i] = EdgeFaceCandidate{EdgeIndex: pair.id0, FaceIndex: pair.id1}
	}
	return candidates
}

// FaceVertexPairs returns the deduplicated face-vertex candidates.
// A face is never paired with its own vertices; when groups is non-empty, a
// vertex sharing a group id with any face vertex is excluded.
func (g *HashGrid) FaceVertexPairs(faces [][3]int, groups []int) []FaceVertexCandidate {
	isEndpoint := func(fi, vi int) bool {
		return vi == faces[fi][0] || vi == faces[fi][1] || vi == faces[fi][2]
	}

	checkGroups := len(groups) > 0
	isSameGroup := func(fi, vi int) bool {
		return checkGroups &&
			(groups[vi] == groups[faces[fi][0]] ||
				groups[vi] == groups[faces[fi][1]] ||
				groups[vi] == groups[faces[fi][2]])
	}

	pairs := joinPairs(g.faceItems, g.vertexItems, isEndpoint, isSameGroup)

	candidates := make([]FaceVertexCandidate, len(pairs))
	for i, pair := range pairs {
		candidates[i] = FaceVertexCandidate{FaceIndex: pair.id0, VertexIndex: pair.id1}
	}
	return candidates
}
