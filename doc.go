// Package ringfield is a scroll-driven 3D particle hero for [Ebitengine].
//
// About eleven thousand particles settle into two intersecting, tilted tori
// ringed by debris. Each frame every particle eases toward a target that
// spins with its rotation class, slides sideways as the page scrolls
// through four showcase panels, and is pushed away from the pointer. The
// result is projected with a simple perspective divide and drawn as small
// squares, or as discs once a particle is large enough.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the engine from mouse, wheel, and page keys:
//
//	engine, err := ringfield.NewEngine(ringfield.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = ringfield.Run(engine, ringfield.RunConfig{
//		Title: "ringfield", Width: 1280, Height: 720, ShowFPS: true,
//	})
//
// For full control, mount the engine and call [Engine.Step] and
// [Engine.Draw] yourself with any [Surface]:
//
//	engine.Mount(1280, 720)
//	canvas := ringfield.NewCanvasSurface(1280, 720)
//	engine.SetScrollProgress(0.1)
//	engine.Frame(1.0/60, canvas)
//	canvas.SavePNG("frame.png")
//
// # Scroll timeline
//
// Scroll progress in [0, 1] is scaled by [Config].ScrollScale viewport
// heights. [ResolveScroll] maps the result to the active panel and a
// horizontal slide offset that alternates between +450 and -450 pixels.
// [ScrollInput] turns wheel notches and key presses into a gliding progress
// using [gween].
//
// # Lifecycle
//
// An [Engine] starts Uninitialized, becomes Running on the first successful
// [Engine.Mount], and ends TornDown after [Engine.Teardown]. A torn-down
// engine ignores every call. [Engine.StartLoop] runs the simulation on its
// own cancellable [Loop] for hosts without a frame callback.
//
// # Testing
//
// [Game.InjectPointer], [Game.InjectScroll], and [Game.Screenshot] drive a
// running window programmatically. [LoadTestScript] replays the same
// actions from JSON.
//
// # Logging
//
// Nothing is logged by default. Pass a [log/slog] logger to [SetLogger] to
// see lifecycle events, and enable [Engine.SetDebugMode] for per-frame
// statistics.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package ringfield
