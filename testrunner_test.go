package coffee

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/coffee/input"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "key", "key": "Space"},
			{"action": "screenshot", "label": "after-click"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].key != ebiten.KeySpace {
		t.Errorf("step 3 key = %v, want Space", runner.steps[3].key)
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "NoSuchKey"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStepClickWaitsForInjections(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	p := input.NewPoller()
	var shots screenshotQueue

	runner.step(p, &shots)
	if p.Pending() != 2 {
		t.Fatalf("expected 2 queued steps, got %d", p.Pending())
	}
	runner.step(p, &shots)
	if runner.Done() || len(shots.labels) != 0 {
		t.Error("runner should wait while injections are pending")
	}
}

func TestRunnerStepWaitAndScreenshots(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "a"},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "b"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	p := input.NewPoller()
	var shots screenshotQueue

	ticks := 0
	for !runner.Done() && ticks < 20 {
		runner.step(p, &shots)
		ticks++
	}
	if !runner.Done() {
		t.Fatal("runner never finished")
	}
	// screenshot, wait (1 + 2 idle ticks), screenshot
	if ticks != 5 {
		t.Errorf("ticks = %d, want 5", ticks)
	}
	if got := shots.take(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("screenshots = %v", got)
	}
}

func TestRunnerStepDragAndKey(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 100, "toY": 0, "frames": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	p := input.NewPoller()
	runner.step(p, &screenshotQueue{})
	if p.Pending() != 5 {
		t.Errorf("drag queued %d steps, want 5", p.Pending())
	}

	runner, err = LoadTestScript([]byte(`{"steps": [{"action": "key", "key": "Enter"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	p = input.NewPoller()
	runner.step(p, &screenshotQueue{})
	if p.Pending() != 2 {
		t.Errorf("key queued %d steps, want 2", p.Pending())
	}
}
