package engine

import (
	"math/rand"
	"testing"

	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/vmath"
)

func testIndex(t *testing.T) *SpatialIndex {
	t.Helper()
	return NewSpatialIndex(512, 512, 128)
}

func TestSpanSingleCell(t *testing.T) {
	s := testIndex(t)
	keys := s.Span(0, 0, 32, 32)
	if len(keys) != 1 || keys[0] != (CellKey{Col: 0, Row: 0}) {
		t.Errorf("32x32 box at origin must span exactly cell (0,0), got %v", keys)
	}
}

func TestSpanExactBoundary(t *testing.T) {
	s := testIndex(t)
	// Right edge exactly on a cell boundary does not bleed into the next
	// column
	keys := s.Span(0, 0, 128, 128)
	if len(keys) != 1 {
		t.Errorf("boundary-aligned box must span one cell, got %v", keys)
	}
	// One pixel past the boundary spans four cells
	keys = s.Span(0, 0, 129, 129)
	if len(keys) != 4 {
		t.Errorf("129x129 box must span four cells, got %v", keys)
	}
}

func TestSpanVoidPolicy(t *testing.T) {
	s := testIndex(t)

	// Fully outside: only void
	keys := s.Span(-300, -300, 32, 32)
	if len(keys) != 1 || !keys[0].Void {
		t.Errorf("fully outside box must span only void, got %v", keys)
	}

	// Straddling the boundary: real cell plus one deduplicated void entry
	keys = s.Span(-16, 0, 32, 32)
	var voids, cells int
	for _, k := range keys {
		if k.Void {
			voids++
		} else {
			cells++
		}
	}
	if cells != 1 || voids != 1 {
		t.Errorf("straddling box must span one cell and one void entry, got %v", keys)
	}
}

func TestUpdateDiffMovesBetweenCells(t *testing.T) {
	s := testIndex(t)
	e := core.MakeEntity(0, 1)

	s.Update(e, s.Span(0, 0, 32, 32))
	if !s.Contains(e, CellKey{Col: 0, Row: 0}) {
		t.Fatal("entity must be in cell (0,0)")
	}

	// Move from x=0 to x=200: out of column 0, into column 1
	s.Update(e, s.Span(200, 0, 32, 32))
	if s.Contains(e, CellKey{Col: 0, Row: 0}) {
		t.Error("stale reference left in cell (0,0)")
	}
	if !s.Contains(e, CellKey{Col: 1, Row: 0}) {
		t.Error("entity missing from cell (1,0)")
	}
}

func TestUpdateIdempotent(t *testing.T) {
	s := testIndex(t)
	e := core.MakeEntity(0, 1)

	span := s.Span(100, 100, 64, 64)
	first := s.Update(e, span)
	if first == 0 {
		t.Fatal("first update must add membership")
	}
	again := s.Update(e, s.Span(100, 100, 64, 64))
	if again != 0 {
		t.Errorf("repeated update with no movement must be a no-op, got %d moves", again)
	}
	for _, k := range s.Cells(e) {
		members := 0
		for _, m := range *s.bucketFor(k) {
			if m == e {
				members++
			}
		}
		if members != 1 {
			t.Errorf("entity recorded %d times in bucket %v", members, k)
		}
	}
}

func TestRemoveClearsAllBuckets(t *testing.T) {
	s := testIndex(t)
	e := core.MakeEntity(0, 1)
	s.Update(e, s.Span(-16, 100, 200, 64)) // straddles void and several cells
	s.Remove(e)

	for col := 0; col < s.Cols(); col++ {
		for row := 0; row < s.Rows(); row++ {
			for _, m := range s.InCell(col, row) {
				if m == e {
					t.Fatalf("stale reference in cell (%d,%d)", col, row)
				}
			}
		}
	}
	for _, m := range s.InVoid() {
		if m == e {
			t.Fatal("stale reference in void")
		}
	}
	if len(s.Cells(e)) != 0 {
		t.Error("occupancy record must be cleared")
	}
}

func TestNeighborsOf(t *testing.T) {
	s := testIndex(t)
	a := core.MakeEntity(0, 1)
	b := core.MakeEntity(1, 1)
	c := core.MakeEntity(2, 1)

	s.Update(a, s.Span(0, 0, 32, 32))
	// b shares a's cell, c is far away
	s.Update(b, s.Span(16, 16, 32, 32))
	s.Update(c, s.Span(300, 300, 32, 32))

	got := s.NeighborsOf(a)
	if len(got) != 1 || got[0] != b {
		t.Errorf("neighbors of a = %v, want [b]", got)
	}
	if len(s.NeighborsOf(c)) != 0 {
		t.Error("c must have no neighbors")
	}
}

// Bucket consistency: an entity is in a cell's bucket iff its box overlaps
// the cell extent, and in void iff its box leaves the grid
func TestBucketConsistencyRandomWalk(t *testing.T) {
	s := testIndex(t)
	rng := rand.New(rand.NewSource(7))

	type box struct {
		e          core.Entity
		x, y, w, h float64
	}
	boxes := make([]box, 8)
	for i := range boxes {
		boxes[i].e = core.MakeEntity(uint32(i), 1)
		boxes[i].w = float64(1 + rng.Intn(100))
		boxes[i].h = float64(1 + rng.Intn(100))
	}

	for step := 0; step < 200; step++ {
		for i := range boxes {
			boxes[i].x = float64(rng.Intn(800) - 150)
			boxes[i].y = float64(rng.Intn(800) - 150)
			s.Update(boxes[i].e, s.Span(boxes[i].x, boxes[i].y, boxes[i].w, boxes[i].h))
		}

		cs := s.CellSize()
		for _, b := range boxes {
			outside := false
			minCol := vmath.CellFloor(b.x, cs)
			maxCol := vmath.CellCeil(b.x+b.w, cs) - 1
			minRow := vmath.CellFloor(b.y, cs)
			maxRow := vmath.CellCeil(b.y+b.h, cs) - 1
			if minCol < 0 || maxCol >= s.Cols() || minRow < 0 || maxRow >= s.Rows() {
				outside = true
			}

			for col := 0; col < s.Cols(); col++ {
				for row := 0; row < s.Rows(); row++ {
					overlaps := vmath.RectsOverlap(b.x, b.y, b.w, b.h,
						float64(col)*cs, float64(row)*cs, cs, cs)
					if overlaps != s.Contains(b.e, CellKey{Col: col, Row: row}) {
						t.Fatalf("step %d: cell (%d,%d) membership=%v overlap=%v for box %+v",
							step, col, row, !overlaps, overlaps, b)
					}
				}
			}

			inVoid := s.Contains(b.e, CellKey{Void: true})
			if inVoid != outside {
				t.Fatalf("step %d: void membership=%v outside=%v for box %+v", step, inVoid, outside, b)
			}
		}
	}
}
