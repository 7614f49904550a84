package engine

import (
	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/vmath"
)

// CellKey addresses one collision-area bucket. Void keys ignore Col/Row;
// there is a single void bucket for everything outside the grid extent.
type CellKey struct {
	Col, Row int
	Void     bool
}

type bucket []core.Entity

// SpatialIndex partitions a bounded room into fixed-size collision areas
// plus one void bucket, and tracks which buckets each entity's bounding box
// overlaps. Membership is updated by diffing against the previously
// recorded cell set, never by rebuilding.
//
// Void policy: every (col, row) an entity's span produces outside
// [0, cols) x [0, rows) contributes one (deduplicated) membership in the
// void bucket; in-range cells are always kept. An entity straddling the
// room boundary is therefore in its real cells and in void.
type SpatialIndex struct {
	cellSize float64
	cols     int
	rows     int
	cells    []bucket // row-major: index = row*cols + col
	void     bucket
	occupied map[core.Entity][]CellKey
}

// NewSpatialIndex creates a grid covering width x height with square cells
// of the given size. Dimensions are assumed validated by config.
func NewSpatialIndex(width, height, cellSize float64) *SpatialIndex {
	cols := vmath.CellCeil(width, cellSize)
	rows := vmath.CellCeil(height, cellSize)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &SpatialIndex{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([]bucket, cols*rows),
		occupied: make(map[core.Entity][]CellKey),
	}
}

// CellSize returns the cell edge length
func (s *SpatialIndex) CellSize() float64 { return s.cellSize }

// Cols returns the grid width in cells
func (s *SpatialIndex) Cols() int { return s.cols }

// Rows returns the grid height in cells
func (s *SpatialIndex) Rows() int { return s.rows }

// Span returns the deduplicated cell keys covered by a bounding box. The
// span is exact: a cell is included iff the box overlaps its extent, with a
// degenerate (zero-size) box occupying the single cell containing its
// origin. Out-of-range cells collapse into one void key.
func (s *SpatialIndex) Span(left, top, w, h float64) []CellKey {
	minCol := vmath.CellFloor(left, s.cellSize)
	maxCol := vmath.CellCeil(left+w, s.cellSize) - 1
	if maxCol < minCol {
		maxCol = minCol
	}
	minRow := vmath.CellFloor(top, s.cellSize)
	maxRow := vmath.CellCeil(top+h, s.cellSize) - 1
	if maxRow < minRow {
		maxRow = minRow
	}

	keys := make([]CellKey, 0, (maxCol-minCol+1)*(maxRow-minRow+1))
	voidSeen := false
	for col := minCol; col <= maxCol; col++ {
		for row := minRow; row <= maxRow; row++ {
			if col >= 0 && col < s.cols && row >= 0 && row < s.rows {
				keys = append(keys, CellKey{Col: col, Row: row})
			} else if !voidSeen {
				keys = append(keys, CellKey{Void: true})
				voidSeen = true
			}
		}
	}
	return keys
}

func (s *SpatialIndex) bucketFor(key CellKey) *bucket {
	if key.Void {
		return &s.void
	}
	return &s.cells[key.Row*s.cols+key.Col]
}

// Update reconciles the entity's bucket membership with the given span,
// removing it only from buckets it left and adding it only to buckets it
// entered. Returns the number of membership changes. Calling twice with the
// same span is a no-op.
func (s *SpatialIndex) Update(e core.Entity, keys []CellKey) int {
	old := s.occupied[e]
	moves := 0

	for _, k := range old {
		if !containsKey(keys, k) {
			bucketRemove(s.bucketFor(k), e)
			moves++
		}
	}
	for _, k := range keys {
		if !containsKey(old, k) {
			b := s.bucketFor(k)
			*b = append(*b, e)
			moves++
		}
	}

	s.occupied[e] = keys
	return moves
}

// Remove clears all bucket membership for the entity. Infallible; removing
// an unknown entity is a no-op.
func (s *SpatialIndex) Remove(e core.Entity) {
	for _, k := range s.occupied[e] {
		bucketRemove(s.bucketFor(k), e)
	}
	delete(s.occupied, e)
}

// Cells returns the entity's currently occupied cell keys
func (s *SpatialIndex) Cells(e core.Entity) []CellKey {
	return s.occupied[e]
}

// Contains reports whether the entity is recorded in the given bucket
func (s *SpatialIndex) Contains(e core.Entity, key CellKey) bool {
	for _, member := range *s.bucketFor(key) {
		if member == e {
			return true
		}
	}
	return false
}

// NeighborsOf returns every entity sharing at least one bucket with e,
// excluding e itself
func (s *SpatialIndex) NeighborsOf(e core.Entity) []core.Entity {
	return s.union(s.occupied[e], e)
}

// EntitiesIn returns the deduplicated union of the given buckets' members
func (s *SpatialIndex) EntitiesIn(keys []CellKey) []core.Entity {
	return s.union(keys, core.NilEntity)
}

func (s *SpatialIndex) union(keys []CellKey, exclude core.Entity) []core.Entity {
	var out []core.Entity
	seen := make(map[core.Entity]struct{})
	for _, k := range keys {
		for _, member := range *s.bucketFor(k) {
			if member == exclude {
				continue
			}
			if _, dup := seen[member]; dup {
				continue
			}
			seen[member] = struct{}{}
			out = append(out, member)
		}
	}
	return out
}

// InCell returns a view of the bucket at (col, row), nil when out of range.
// Callers must not retain it across updates.
func (s *SpatialIndex) InCell(col, row int) []core.Entity {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return nil
	}
	return s.cells[row*s.cols+col]
}

// InVoid returns a view of the void bucket
func (s *SpatialIndex) InVoid() []core.Entity {
	return s.void
}

// Clear removes all entities from all buckets
func (s *SpatialIndex) Clear() {
	for i := range s.cells {
		s.cells[i] = nil
	}
	s.void = nil
	s.occupied = make(map[core.Entity][]CellKey)
}

// bucketRemove deletes by swap-remove to keep buckets densely packed
func bucketRemove(b *bucket, e core.Entity) {
	members := *b
	for i, member := range members {
		if member == e {
			last := len(members) - 1
			members[i] = members[last]
			members[last] = core.NilEntity
			*b = members[:last]
			return
		}
	}
}

// containsKey does a linear scan; spans are a handful of cells at most
func containsKey(keys []CellKey, k CellKey) bool {
	for _, candidate := range keys {
		if candidate == k {
			return true
		}
	}
	return false
}
