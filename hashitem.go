package sweep

import "github.com/akmonengine/sweep/geom"

// HashItem - one bucket entry of the grid: the hashed cell key and the
// index of the primitive whose swept box covers that cell. A primitive
// spanning several cells produces one item per cell; many primitives may
// share a key.
type HashItem struct {
	Key int
	ID  int
	Box geom.AABB
}

// Less orders items by (Key, ID), so sorting makes equal keys contiguous
// for the merge-join.
func (item HashItem) Less(other HashItem) bool {
	if item.Key == other.Key {
		return item.ID < other.ID
	}
	return item.Key < other.Key
}
