package ringfield

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window and host settings for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	Width, Height int
	// ShowFPS draws an FPS/TPS and scroll section overlay.
	ShowFPS bool
	// Debug logs per-frame statistics at debug level.
	Debug bool
	// Additive switches particles to additive blending.
	Additive bool
	// Background is the clear color behind the particles.
	Background RGBA
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// TestScript, when set, is loaded with LoadTestScript and replayed.
	TestScript []byte
	// ExitAfterScript ends the run once the test script has finished.
	ExitAfterScript bool
}

// DefaultBackground is the near-black hero background.
var DefaultBackground = RGBA{0.02, 0.02, 0.04, 1}

// Game adapts an Engine to ebiten. It feeds real or injected pointer and
// scroll input into the engine, steps it once per tick, and draws it with an
// EbitenSurface. Layout changes mount or resize the engine.
type Game struct {
	engine  *Engine
	scroll  *ScrollInput
	surface *EbitenSurface
	cfg     RunConfig

	width, height int
	cursorX       int
	cursorY       int
	cursorSeen    bool
	cursorInside  bool
	touchIDs      []ebiten.TouchID
	touching      bool

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is the output directory for Screenshot.
	ScreenshotDir string

	overlayAccum float64
	overlayText  string
	overlayImg   *ebiten.Image
	overlayDirty bool
}

// NewGame wraps engine for ebiten using cfg.
func NewGame(engine *Engine, cfg RunConfig) *Game {
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if cfg.Background == (RGBA{}) {
		cfg.Background = DefaultBackground
	}
	engine.SetDebugMode(cfg.Debug)
	return &Game{
		engine:        engine,
		scroll:        NewScrollInput(engine.Config().ScrollScale),
		cfg:           cfg,
		ScreenshotDir: dir,
	}
}

// Engine returns the wrapped engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Scroll returns the scroll input feeding the engine.
func (g *Game) Scroll() *ScrollInput {
	return g.scroll
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Update.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.engine.Lifecycle() == TornDown {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())

	if g.testRunner != nil {
		g.testRunner.step(g)
		if g.cfg.ExitAfterScript && g.testRunner.Done() && len(g.screenshotQueue) == 0 {
			g.engine.Teardown()
			return ebiten.Termination
		}
	}
	if !g.processInjected() {
		if quit := g.processInput(); quit {
			g.engine.Teardown()
			return ebiten.Termination
		}
	}

	g.engine.SetScrollProgress(g.scroll.Update(float32(dt)))
	g.engine.Step(dt)
	g.updateOverlay(dt)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	screen.Fill(g.cfg.Background.color())
	if g.surface == nil {
		g.surface = NewEbitenSurface()
		g.surface.SetAdditive(g.cfg.Additive)
	}
	g.surface.Begin(screen)
	g.engine.Draw(g.surface)

	g.drawOverlay(screen)
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The first non-empty layout mounts the
// engine; later size changes resize it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.engine.Lifecycle() == Uninitialized {
			g.engine.Mount(outsideWidth, outsideHeight)
		} else {
			g.engine.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs engine until the window closes, Escape is
// pressed, or the engine is torn down. The engine is always torn down when
// Run returns.
func Run(engine *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Title == "" {
		cfg.Title = "ringfield"
	}

	g := NewGame(engine, cfg)
	if len(cfg.TestScript) > 0 {
		runner, err := LoadTestScript(cfg.TestScript)
		if err != nil {
			return err
		}
		g.SetTestRunner(runner)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	engine.Teardown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
