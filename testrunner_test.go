package ringfield

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "pointer", "x": 100, "y": 200},
			{"action": "scroll", "progress": 0.25},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Progress != 0.25 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":       `not json`,
		"no steps":       `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "click"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerStep_PointerAndScroll(t *testing.T) {
	g := newTestGame(t)
	g.Layout(800, 600)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "pointer", "x": 50, "y": 60},
		{"action": "scroll", "progress": 0.3}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	runner.step(g)
	if len(g.injectQueue) != 1 {
		t.Fatalf("queue len = %d, want 1", len(g.injectQueue))
	}
	g.processInjected()
	if p := g.Engine().state.Pointer; p.X != 50 || p.Y != 60 {
		t.Errorf("pointer = %+v", p)
	}

	runner.step(g)
	g.processInjected()
	if g.Scroll().Progress() != 0.3 {
		t.Errorf("progress = %v, want 0.3", g.Scroll().Progress())
	}

	runner.step(g)
	if !runner.Done() {
		t.Error("runner not done after last step")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		runner.step(g)
		if len(g.screenshotQueue) != 0 {
			t.Fatalf("screenshot queued on frame %d", i)
		}
	}
	runner.step(g)
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "after" {
		t.Fatalf("queue = %v, want [after]", g.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner not done")
	}
}

func TestRunnerStep_WaitsForSweep(t *testing.T) {
	g := newTestGame(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "sweep", "fromX": 0, "fromY": 0, "toX": 30, "toY": 0, "frames": 3},
		{"action": "screenshot", "label": "swept"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(g)
	if len(g.injectQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(g.injectQueue))
	}
	for len(g.injectQueue) > 0 {
		runner.step(g)
		if len(g.screenshotQueue) != 0 {
			t.Fatal("screenshot taken before sweep finished")
		}
		g.processInjected()
	}
	runner.step(g)
	if len(g.screenshotQueue) != 1 {
		t.Errorf("queue = %v, want one screenshot", g.screenshotQueue)
	}
}
