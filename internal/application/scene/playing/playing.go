// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/runner/internal/application/replay"
	"github.com/younwookim/runner/internal/application/scene"
	"github.com/younwookim/runner/internal/application/simulation"
	"github.com/younwookim/runner/internal/application/state"
	"github.com/younwookim/runner/internal/application/system"
	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/ecs"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorGround   = color.RGBA{80, 80, 100, 255}
	colorDanger   = color.RGBA{200, 50, 50, 255}
	colorFinish   = color.RGBA{255, 215, 0, 160}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorProbeOn  = color.RGBA{0, 255, 0, 255}
	colorProbeOff = color.RGBA{255, 0, 0, 255}
	colorBG       = color.RGBA{26, 26, 46, 255}
)

// Options configures a playing scene
type Options struct {
	Loader     *config.Loader
	Stage      string
	RecordPath string
	// Watcher is shared across stage reloads. The scene drains it but never closes it.
	Watcher *config.Watcher

	// recorder carries one recording across reloads so every attempt ends
	// up in RecordPath
	recorder *replay.Recorder
}

// Playing is the main gameplay scene
type Playing struct {
	opts     Options
	tuning   *config.TuningConfig
	stageCfg *config.StageConfig
	sim      *simulation.Simulation
	input    *system.InputSystem
	camera   *system.CameraFollow
	state    state.GameState
	bg       color.Color

	screenW int
	screenH int
	ppu     float64

	showProbe bool
	recorder  *replay.Recorder
}

// New loads the stage named in opts and builds a fresh simulation for it
func New(tuning *config.TuningConfig, opts Options) (*Playing, error) {
	if opts.Loader == nil || tuning == nil {
		return nil, fmt.Errorf("%w: config loader and tuning", system.ErrMissingCollaborator)
	}

	stageCfg, err := opts.Loader.LoadStage(opts.Stage)
	if err != nil {
		return nil, err
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage %s: %w", opts.Stage, err)
	}

	sim, err := simulation.New(stage, tuning)
	if err != nil {
		return nil, err
	}
	input, err := system.NewInputSystem(tuning.Input)
	if err != nil {
		sim.Close()
		return nil, err
	}
	camera, err := newCamera(tuning.Camera, sim)
	if err != nil {
		sim.Close()
		return nil, err
	}

	p := &Playing{
		opts:     opts,
		tuning:   tuning,
		stageCfg: stageCfg,
		sim:      sim,
		input:    input,
		camera:   camera,
		state:    state.StateLoading,
		bg:       parseHexColor(stageCfg.Background.Color, colorBG),
		screenW:  tuning.Display.ScreenWidth,
		screenH:  tuning.Display.ScreenHeight,
		ppu:      tuning.Display.PixelsPerUnit,
	}

	if opts.RecordPath != "" {
		p.recorder = opts.recorder
		if p.recorder == nil {
			p.recorder = replay.NewRecorder(opts.Stage, 1.0/float64(tuning.Display.Framerate))
			log.Printf("Recording enabled: %s", opts.RecordPath)
		}
	}

	return p, nil
}

func newCamera(cfg config.CameraConfig, sim *simulation.Simulation) (*system.CameraFollow, error) {
	spawn := sim.PlayerPosition()
	start := spawn.Add(entity.Vec2{X: cfg.OffsetX, Y: cfg.OffsetY})
	return system.NewCameraFollow(cfg, start, spawn, sim)
}

// Update reads the keyboard and advances one frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		p.showProbe = !p.showProbe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	return p.Advance(p.input.GetInput(), dt)
}

// Advance runs one frame with the given key levels. Hot reload events are
// applied first, even while paused.
func (p *Playing) Advance(in system.InputState, dt float64) (scene.Scene, error) {
	if next, err := p.drainWatcher(); next != nil || err != nil {
		return next, err
	}
	if !p.state.Simulating() {
		return nil, nil
	}

	p.input.Apply(p.sim.Latch(), in)
	if p.recorder != nil {
		p.recorder.RecordFrame(p.sim.Latch().Peek())
	}

	outcome, err := p.sim.Step(dt)
	if err != nil {
		return nil, err
	}
	p.camera.Update(p.sim.PlayerPosition(), p.sim.Clock().Scale(dt))

	if outcome.NeedsReload() {
		p.state = state.StateReloading
		return p.reload()
	}
	return nil, nil // nil = stay on this scene
}

// nextOptions returns the options for a rebuilt scene of the same stage,
// continuing the current recording
func (p *Playing) nextOptions() Options {
	opts := p.opts
	opts.recorder = p.recorder
	return opts
}

// reload builds a fresh scene for the same stage
func (p *Playing) reload() (scene.Scene, error) {
	next, err := New(p.tuning, p.nextOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to reload stage %s: %w", p.opts.Stage, err)
	}
	return next, nil
}

func (p *Playing) drainWatcher() (scene.Scene, error) {
	if p.opts.Watcher == nil {
		return nil, nil
	}
	for {
		select {
		case name, ok := <-p.opts.Watcher.Events:
			if !ok {
				p.opts.Watcher = nil
				return nil, nil
			}
			if next := p.applyConfigChange(name); next != nil {
				return next, nil
			}
		case err, ok := <-p.opts.Watcher.Errors:
			if !ok {
				p.opts.Watcher = nil
				return nil, nil
			}
			log.Printf("config watcher: %v", err)
		default:
			return nil, nil
		}
	}
}

// applyConfigChange reacts to an edited config file. Invalid edits are
// logged and ignored. A change to the running stage file returns the
// rebuilt scene.
func (p *Playing) applyConfigChange(path string) scene.Scene {
	base := filepath.Base(path)
	switch {
	case base == config.TuningYAML || base == config.TuningJSON:
		tuning, err := p.opts.Loader.LoadTuning()
		if err != nil {
			log.Printf("Hot reload ignored: %v", err)
			return nil
		}
		if err := p.Retune(tuning); err != nil {
			log.Printf("Hot reload ignored: %v", err)
		}
		return nil
	case base == p.opts.Stage+".json":
		next, err := New(p.tuning, p.nextOptions())
		if err != nil {
			log.Printf("Hot reload ignored: %v", err)
			return nil
		}
		log.Printf("Stage %s reloaded from %s", p.opts.Stage, path)
		return next
	}
	return nil
}

// Retune applies new tuning to the running scene. The jump in progress and
// held keys carry over. Nothing changes on error.
func (p *Playing) Retune(tuning *config.TuningConfig) error {
	bindings, err := system.NewBindings(tuning.Input)
	if err != nil {
		return err
	}
	camera, err := system.NewCameraFollow(tuning.Camera, p.camera.Position(), p.sim.PlayerPosition(), p.sim)
	if err != nil {
		return err
	}
	if err := p.sim.Retune(tuning); err != nil {
		return err
	}
	p.input.SetBindings(bindings)
	p.camera = camera
	p.tuning = tuning
	log.Printf("Tuning reloaded for stage %s", p.opts.Stage)
	return nil
}

// TogglePause switches between playing and paused
func (p *Playing) TogglePause() {
	switch p.state {
	case state.StatePlaying:
		p.state = state.StatePaused
	case state.StatePaused:
		p.state = state.StatePlaying
	}
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.bg)

	p.drawTiles(screen)
	p.drawPickups(screen)
	p.drawPlayer(screen)
	if p.showProbe {
		p.drawProbe(screen)
	}
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

// toScreen converts a world point (Y up) into screen pixels (Y down)
func (p *Playing) toScreen(w entity.Vec2) (float32, float32) {
	cam := p.camera.Position()
	x := (w.X-cam.X)*p.ppu + float64(p.screenW)/2
	y := float64(p.screenH)/2 - (w.Y-cam.Y)*p.ppu
	return float32(x), float32(y)
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	stage := p.sim.Stage()
	size := float32(stage.TileSize * p.ppu)

	for ty := 0; ty < stage.Height; ty++ {
		for tx := 0; tx < stage.Width; tx++ {
			tile := stage.GetTile(tx, ty)
			var c color.Color
			switch tile.Type {
			case entity.TileGround:
				c = colorGround
			case entity.TileDanger:
				c = colorDanger
			case entity.TileFinish:
				c = colorFinish
			default:
				continue
			}

			// Top-left corner of the tile on screen
			minX, _, _, maxY := stage.TileBounds(tx, ty)
			x, y := p.toScreen(entity.Vec2{X: minX, Y: maxY})
			if x+size < 0 || y+size < 0 || x > float32(p.screenW) || y > float32(p.screenH) {
				continue
			}
			vector.FillRect(screen, x, y, size, size, c, false)
		}
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image) {
	world := p.sim.World()
	for _, id := range world.PickupIDs() {
		pickup := world.Pickup[id]
		x, y := p.toScreen(world.Position[id].Vec())
		r := float32(pickup.Radius * p.ppu)
		vector.StrokeCircle(screen, x, y, r, 2, ecs.PickupColors[pickup.Kind], true)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	size := p.tuning.Player
	pos := p.sim.PlayerPosition()
	x, y := p.toScreen(entity.Vec2{X: pos.X - size.Width/2, Y: pos.Y + size.Height/2})
	vector.FillRect(screen, x, y, float32(size.Width*p.ppu), float32(size.Height*p.ppu), colorPlayer, false)
}

// drawProbe outlines the ground probe, green while grounded
func (p *Playing) drawProbe(screen *ebiten.Image) {
	center, radius := p.sim.Controller().ProbeGeometry()
	c := colorProbeOff
	if p.sim.Controller().Grounded() {
		c = colorProbeOn
	}
	x, y := p.toScreen(center)
	vector.StrokeCircle(screen, x, y, float32(radius*p.ppu), 1, c, true)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	ctrl := p.sim.Controller()
	vel := p.sim.PlayerVelocity()
	text := fmt.Sprintf("A/D: Move | Space: Jump | S: Brake | F1: Probe | ESC: Pause\n"+
		"vx %.2f vy %.2f | %s | time x%.2f",
		vel.X, vel.Y, ctrl.Phase(), p.sim.Clock().Factor())
	if ctrl.DoubleJumpGranted() {
		text += " | double jump"
	}
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	p.state = state.StatePlaying
}

// OnExit saves any recording and releases the physics space
func (p *Playing) OnExit() {
	p.saveRecording()
	p.sim.Close()
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *simulation.Simulation {
	return p.sim
}

// Camera returns the camera follow
func (p *Playing) Camera() *system.CameraFollow {
	return p.camera
}

// ProbeVisible reports whether the debug probe is drawn
func (p *Playing) ProbeVisible() bool {
	return p.showProbe
}

// Recorder returns the recorder, or nil when not recording
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}

// parseHexColor parses "#rrggbb", returning fallback when malformed
func parseHexColor(s string, fallback color.Color) color.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
