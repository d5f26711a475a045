// stats.go: diagnostic introspection recovered from original_source/dict.c's
// dict_printinfo and dict_sizeof.
package dictionary

import (
	"fmt"
	"unsafe"
)

// Stats is a snapshot of a Dictionary's internal load, useful for watching
// tombstone accumulation or for presizing a successor table.
type Stats struct {
	ActiveCount                int
	UsedCount                  int
	Capacity                   int
	FreeCount                  int
	LoadFactor                 float64 // UsedCount / Capacity
	TombstoneFactor            float64 // (UsedCount - ActiveCount) / UsedCount, 0 if UsedCount == 0
	RecommendResize            bool    // FreeCount <= 0
	RecommendCompactionWarning bool    // TombstoneFactor exceeds 0.5 with enough entries to matter
}

// Stats computes a Stats snapshot for d.
func (d *Dictionary[K, V]) Stats() Stats {
	s := Stats{
		ActiveCount: d.activeCount,
		UsedCount:   d.usedCount,
		Capacity:    d.index.capacity,
		FreeCount:   d.freeCount,
	}
	if d.index.capacity > 0 {
		s.LoadFactor = float64(d.usedCount) / float64(d.index.capacity)
	}
	if d.usedCount > 0 {
		s.TombstoneFactor = float64(d.usedCount-d.activeCount) / float64(d.usedCount)
	}
	s.RecommendResize = d.freeCount <= 0
	s.RecommendCompactionWarning = d.usedCount >= MIN_NUM_ENT && s.TombstoneFactor > 0.5
	return s
}

// ApproxBytes estimates the dictionary's heap footprint: the entry
// vector's backing array plus the hash index's backing array, each sized
// by its element width. It does not account for indirect storage owned by
// K or V (e.g. a string's backing bytes, or a pointer value's pointee).
func (d *Dictionary[K, V]) ApproxBytes() int {
	var e entry[K, V]
	entryBytes := int(unsafe.Sizeof(e)) * cap(d.entries.items)

	var indexElemBytes int
	switch d.index.store.(type) {
	case index8:
		indexElemBytes = 1
	case index16:
		indexElemBytes = 2
	case index32:
		indexElemBytes = 4
	default:
		indexElemBytes = 8
	}
	indexBytes := indexElemBytes * d.index.capacity

	return entryBytes + indexBytes
}

// String implements fmt.Stringer, reporting the dictionary's size and
// load for debugging and log lines; it is not a serialization format.
func (d *Dictionary[K, V]) String() string {
	return fmt.Sprintf("Dictionary{active=%d, used=%d, capacity=%d, load=%.2f}",
		d.activeCount, d.usedCount, d.index.capacity, d.Stats().LoadFactor)
}
