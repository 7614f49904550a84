// Headless collision benchmark: fills a room with moving entities, steps a
// fixed number of frames, and prints throughput plus the engine counters.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/starforge/stellar/config"
	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/engine"
)

var (
	entities = flag.Int("entities", 2000, "Number of moving entities")
	frames   = flag.Int("frames", 600, "Frames to step")
	shape    = flag.String("shape", "rectangle", "Shape: rectangle|ellipse")
	seed     = flag.Int64("seed", 1, "RNG seed")
)

const kindMover core.Kind = 1

func main() {
	flag.Parse()

	cfg := config.Default()
	cfg.Room.Width = 4096
	cfg.Room.Height = 4096

	room, err := engine.NewRoom(cfg.Room)
	if err != nil {
		fmt.Fprintf(os.Stderr, "room: %v\n", err)
		os.Exit(1)
	}

	mode := core.ShapeRectangle
	if *shape == "ellipse" {
		mode = core.ShapeEllipse
	}

	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *entities; i++ {
		_, err := room.Spawn(engine.EntityProto{
			X:                rng.Float64() * cfg.Room.Width,
			Y:                rng.Float64() * cfg.Room.Height,
			VelX:             (rng.Float64()*2 - 1) * 120,
			VelY:             (rng.Float64()*2 - 1) * 120,
			Kind:             kindMover,
			Shape:            mode,
			BBoxW:            float64(8 + rng.Intn(24)),
			BBoxH:            float64(8 + rng.Intn(24)),
			Tangible:         true,
			ChecksCollisions: true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "spawn: %v\n", err)
			os.Exit(1)
		}
	}

	dt := 1.0 / cfg.Step.Hz
	start := time.Now()
	for f := 0; f < *frames; f++ {
		room.Step(dt)
		room.Events().Consume()
	}
	elapsed := time.Since(start)

	snap := room.Stats().Snapshot()
	perFrame := elapsed / time.Duration(*frames)

	fmt.Printf("entities:     %d (%s)\n", *entities, mode)
	fmt.Printf("frames:       %d in %v (%v/frame, %.1f fps)\n",
		*frames, elapsed.Round(time.Millisecond), perFrame, float64(time.Second)/float64(perFrame))
	fmt.Printf("pairs tested: %d (%.1f/frame)\n", snap.PairsTested, float64(snap.PairsTested)/float64(*frames))
	fmt.Printf("collisions:   %d\n", snap.Collisions)
	fmt.Printf("cell moves:   %d (%.1f/frame)\n", snap.CellMoves, float64(snap.CellMoves)/float64(*frames))
	fmt.Printf("last step:    %dus\n", snap.LastStepMicros)
}
