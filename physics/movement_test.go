package physics

import (
	"testing"

	"github.com/starforge/stellar/core"
)

func TestIntegrateSemiImplicit(t *testing.T) {
	k := core.Kinetic{VelX: 10, AccelY: 4}
	Integrate(&k, 0.5)
	if k.X != 5 {
		t.Errorf("x = %v, want 5", k.X)
	}
	// Velocity updates before position: vy = 2, y = 1
	if k.VelY != 2 || k.Y != 1 {
		t.Errorf("vy = %v y = %v, want 2 and 1", k.VelY, k.Y)
	}
}

func TestCapSpeed(t *testing.T) {
	k := core.Kinetic{VelX: 30, VelY: 40}
	if !CapSpeed(&k, 25) {
		t.Fatal("speed 50 must be capped at 25")
	}
	if k.VelX != 15 || k.VelY != 20 {
		t.Errorf("capped velocity = (%v, %v), want (15, 20)", k.VelX, k.VelY)
	}
	if CapSpeed(&k, 25) {
		t.Error("already at the cap, no change expected")
	}

	slow := core.Kinetic{VelX: 1}
	if CapSpeed(&slow, 25) {
		t.Error("slow entity must be untouched")
	}
}
