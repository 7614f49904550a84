// Collision sandbox: balls bouncing around a walled room, rendered in the
// terminal. Each wall contact reverses velocity on the contact axis and
// plays a blip. The bottom line shows the engine counters.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/starforge/stellar/config"
	"github.com/starforge/stellar/core"
	"github.com/starforge/stellar/engine"
	"github.com/starforge/stellar/physics"
)

const (
	kindBall core.Kind = iota + 1
	kindWall

	wallThickness = 4.0
	blipCooldown  = 60 * time.Millisecond
)

type Game struct {
	screen        tcell.Screen
	width, height int

	room  *engine.Room
	cfg   *config.Config
	balls []core.Entity

	audioInit bool
	lastBlip  time.Time
}

func NewGame(cfg *config.Config, ballCount int) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen: screen,
		cfg:    cfg,
	}
	g.width, g.height = screen.Size()

	// Room units are terminal cells
	g.cfg.Room.Width = float64(g.width)
	g.cfg.Room.Height = float64(g.height - 1) // Bottom line is the status bar
	g.room, err = engine.NewRoom(g.cfg.Room)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	if err := g.initAudio(); err != nil {
		// Non-fatal, sandbox can run without sound
		g.audioInit = false
	}

	g.spawnWalls()
	g.spawnBalls(ballCount)
	g.room.Listen(kindBall, engine.DirectionalHandler{
		Left:   g.bounceX,
		Right:  g.bounceX,
		Top:    g.bounceY,
		Bottom: g.bounceY,
	})

	return g, nil
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) playBlip() {
	if !g.audioInit || time.Since(g.lastBlip) < blipCooldown {
		return
	}
	g.lastBlip = time.Now()

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(40 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 880)
	speaker.Play(beep.Take(duration, sine))
}

// spawnWalls places four tangible slabs just outside the visible area so
// balls rebound at the edges
func (g *Game) spawnWalls() {
	w, h := g.room.Width(), g.room.Height()
	slabs := []engine.EntityProto{
		{X: -wallThickness, Y: -wallThickness, BBoxW: w + 2*wallThickness, BBoxH: wallThickness}, // Top
		{X: -wallThickness, Y: h, BBoxW: w + 2*wallThickness, BBoxH: wallThickness},              // Bottom
		{X: -wallThickness, Y: 0, BBoxW: wallThickness, BBoxH: h},                                // Left
		{X: w, Y: 0, BBoxW: wallThickness, BBoxH: h},                                             // Right
	}
	for _, p := range slabs {
		p.Kind = kindWall
		p.Tangible = true
		g.room.Spawn(p)
	}
}

func (g *Game) spawnBalls(count int) {
	w, h := g.room.Width(), g.room.Height()
	for i := 0; i < count; i++ {
		e, err := g.room.Spawn(engine.EntityProto{
			X:                2 + rand.Float64()*(w-4),
			Y:                2 + rand.Float64()*(h-4),
			VelX:             (rand.Float64()*2 - 1) * 20,
			VelY:             (rand.Float64()*2 - 1) * 10,
			Kind:             kindBall,
			BBoxW:            1,
			BBoxH:            1,
			Tangible:         true,
			ChecksCollisions: true,
		})
		if err == nil {
			g.balls = append(g.balls, e)
		}
	}
}

func (g *Game) bounceX(r *engine.Room, self, _ core.Entity) {
	vx, vy, ok := r.Velocity(self)
	if !ok {
		return
	}
	r.SetVelocity(self, -vx, vy)
	g.playBlip()
}

func (g *Game) bounceY(r *engine.Room, self, _ core.Entity) {
	vx, vy, ok := r.Velocity(self)
	if !ok {
		return
	}
	r.SetVelocity(self, vx, -vy)
	g.playBlip()
}

func (g *Game) step(dt float64) {
	g.room.Step(dt)
	if max := g.cfg.Step.MaxSpeed; max > 0 {
		for _, e := range g.balls {
			vx, vy, ok := g.room.Velocity(e)
			if !ok {
				continue
			}
			k := core.Kinetic{VelX: vx, VelY: vy}
			if physics.CapSpeed(&k, max) {
				g.room.SetVelocity(e, k.VelX, k.VelY)
			}
		}
	}
	// Drain the queue so it never wraps; the listener already handled sound
	g.room.Events().Consume()
}

func (g *Game) draw() {
	g.screen.Clear()

	// Collision-area boundaries as faint crosses
	cs := int(g.room.Index().CellSize())
	gridStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	for x := cs; x < g.width; x += cs {
		for y := cs; y < g.height-1; y += cs {
			g.screen.SetContent(x, y, '+', nil, gridStyle)
		}
	}

	ballStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, e := range g.balls {
		x, y, ok := g.room.Position(e)
		if !ok {
			continue
		}
		g.screen.SetContent(int(x), int(y), 'o', nil, ballStyle)
	}

	snap := g.room.Stats().Snapshot()
	status := fmt.Sprintf(" frames %d  pairs %d  collisions %d  cell moves %d  step %dus",
		snap.FramesStepped, snap.PairsTested, snap.Collisions, snap.CellMoves, snap.LastStepMicros)
	statusStyle := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		if i >= g.width {
			break
		}
		g.screen.SetContent(i, g.height-1, r, nil, statusStyle)
	}

	g.screen.Show()
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
	}
	return true
}

func (g *Game) run() {
	const dt = 1.0 / 60
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.step(dt)
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	ballCount := flag.Int("balls", 24, "number of balls")
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	game, err := NewGame(cfg, *ballCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
