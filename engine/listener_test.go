package engine

import (
	"testing"

	"github.com/starforge/stellar/core"
)

func TestDirectionalHandlerRouting(t *testing.T) {
	var fired []string
	mark := func(name string) func(*Room, core.Entity, core.Entity) {
		return func(*Room, core.Entity, core.Entity) {
			fired = append(fired, name)
		}
	}

	h := DirectionalHandler{
		Left:   mark("left"),
		Right:  mark("right"),
		Top:    mark("top"),
		Bottom: mark("bottom"),
		Any:    mark("any"),
	}

	cases := []struct {
		name       string
		xdir, ydir int
		want       []string
	}{
		{"right contact", 1, 0, []string{"right"}},
		{"left contact", -1, 0, []string{"left"}},
		{"bottom contact", 0, 1, []string{"bottom"}},
		{"top contact", 0, -1, []string{"top"}},
		{"corner", 1, 1, []string{"right", "bottom"}},
		{"continuing", 0, 0, []string{"any"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fired = nil
			h.OnCollision(nil, core.NilEntity, core.NilEntity, c.xdir, c.ydir)
			if len(fired) != len(c.want) {
				t.Fatalf("fired %v, want %v", fired, c.want)
			}
			for i := range fired {
				if fired[i] != c.want[i] {
					t.Fatalf("fired %v, want %v", fired, c.want)
				}
			}
		})
	}
}

// Each unset directional slot falls back to Any on its own axis
func TestDirectionalHandlerFallback(t *testing.T) {
	var fired []string
	h := DirectionalHandler{
		Right: func(*Room, core.Entity, core.Entity) { fired = append(fired, "right") },
		Any:   func(*Room, core.Entity, core.Entity) { fired = append(fired, "any") },
	}

	h.OnCollision(nil, core.NilEntity, core.NilEntity, 1, -1)
	if len(fired) != 2 || fired[0] != "right" || fired[1] != "any" {
		t.Errorf("fired %v, want [right any]", fired)
	}

	// Nothing set for the axis and no Any: silent
	fired = nil
	bare := DirectionalHandler{}
	bare.OnCollision(nil, core.NilEntity, core.NilEntity, -1, 0)
	if len(fired) != 0 {
		t.Errorf("bare handler must be silent, fired %v", fired)
	}
}
