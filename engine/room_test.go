package engine

import (
	"errors"
	"testing"

	"github.com/starforge/stellar/config"
)

func TestSpawnRejectsNegativeBBox(t *testing.T) {
	r := testRoom(t)
	_, err := r.Spawn(EntityProto{BBoxW: -1, BBoxH: 10})
	if !errors.Is(err, ErrInvalidEntity) {
		t.Fatalf("expected ErrInvalidEntity, got %v", err)
	}
}

func TestNewRoomRejectsBadGeometry(t *testing.T) {
	if _, err := NewRoom(config.RoomConfig{Width: 0, Height: 512, CellSize: 128}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("zero width must be rejected, got %v", err)
	}
	if _, err := NewRoom(config.RoomConfig{Width: 512, Height: 512, CellSize: -1}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("negative cell size must be rejected, got %v", err)
	}
}

func TestDestroyCleansEverything(t *testing.T) {
	r := testRoom(t)
	e, _ := r.Spawn(EntityProto{Kind: kindBall, BBoxW: 32, BBoxH: 32, Tangible: true})

	if !r.Destroy(e) {
		t.Fatal("destroy of a live entity must succeed")
	}
	if r.Alive(e) {
		t.Error("destroyed handle must not be alive")
	}
	if r.Destroy(e) {
		t.Error("double destroy must fail")
	}
	if len(r.EntitiesOfKind(kindBall)) != 0 {
		t.Error("kind index must be cleared")
	}
	if len(r.Index().Cells(e)) != 0 {
		t.Error("bucket membership must be cleared")
	}
	if r.SetPosition(e, 1, 1) {
		t.Error("mutators must reject stale handles")
	}
	if _, _, ok := r.Position(e); ok {
		t.Error("accessors must reject stale handles")
	}
}

func TestSetKindMovesIndexEntry(t *testing.T) {
	r := testRoom(t)
	e, _ := r.Spawn(EntityProto{Kind: kindBall, BBoxW: 8, BBoxH: 8})

	r.SetKind(e, kindWall)
	if len(r.EntitiesOfKind(kindBall)) != 0 {
		t.Error("old kind set must be empty")
	}
	got := r.EntitiesOfKind(kindWall)
	if len(got) != 1 || got[0] != e {
		t.Errorf("new kind set = %v, want [e]", got)
	}
}

func TestStepIntegratesAndCounts(t *testing.T) {
	r := testRoom(t)
	e, _ := r.Spawn(EntityProto{VelX: 60, AccelY: 120, BBoxW: 8, BBoxH: 8, Tangible: true})

	r.Step(0.5)
	x, y, _ := r.Position(e)
	if x != 30 {
		t.Errorf("x = %v, want 30", x)
	}
	// Semi-implicit: velocity updates before position
	if y != 30 {
		t.Errorf("y = %v, want 30", y)
	}
	if r.Frame() != 1 {
		t.Errorf("frame = %d, want 1", r.Frame())
	}
	if got := r.Stats().Snapshot().FramesStepped; got != 1 {
		t.Errorf("frames stepped = %d, want 1", got)
	}
}

// Teleporting mid-frame must not rewrite the previous position, so the
// next detection still sees the approach
func TestSetPositionPreservesPreviousFrame(t *testing.T) {
	r := testRoom(t)
	a, _ := r.Spawn(EntityProto{X: 0, Kind: kindBall, BBoxW: 10, BBoxH: 10, Tangible: true, ChecksCollisions: true})
	r.Spawn(EntityProto{X: 100, Kind: kindBall, BBoxW: 10, BBoxH: 10, Tangible: true})

	r.SetPosition(a, 95, 0)
	r.Step(1.0 / 60)

	events := r.Events().Consume()
	if len(events) != 2 {
		t.Fatalf("teleported entity must collide, got %v", events)
	}
	if events[0].XDir != 1 {
		t.Errorf("direction must come from the pre-teleport position, got %+v", events[0])
	}
}

func TestSetTangibleEvictsFromBuckets(t *testing.T) {
	r := testRoom(t)
	e, _ := r.Spawn(EntityProto{BBoxW: 32, BBoxH: 32, Tangible: true})

	r.SetTangible(e, false)
	if len(r.Index().Cells(e)) != 0 {
		t.Error("intangible entity must leave all buckets")
	}

	r.SetTangible(e, true)
	if len(r.Index().Cells(e)) != 1 {
		t.Error("re-tangible entity must rejoin its bucket")
	}
}

func TestSetBBoxClampsAndReindexes(t *testing.T) {
	r := testRoom(t)
	e, _ := r.Spawn(EntityProto{BBoxW: 32, BBoxH: 32, Tangible: true})

	r.SetBBox(e, 0, 0, -5, 200)
	_, _, w, h, _ := r.BBox(e)
	if w != 0 || h != 200 {
		t.Errorf("bbox = %vx%v, want 0x200", w, h)
	}
	// 200 tall from y=0 spans rows 0 and 1
	if got := len(r.Index().Cells(e)); got != 2 {
		t.Errorf("expected 2 occupied cells, got %d", got)
	}
}
