package flappy

import "testing"

func TestAutopilotFlapsBelowTarget(t *testing.T) {
	a := NewAutopilot()
	f := testFrame()

	// Gap is [200, 320): flap once the next bottom edge passes 310
	f.Bird.Velocity = 1
	f.Bird.Y = 280
	if !a.ShouldFlap(f) {
		t.Error("Expected a flap near the lower lip")
	}
	f.Bird.Y = 250
	if a.ShouldFlap(f) {
		t.Error("Expected no flap in the middle of the gap")
	}
	f.Bird.Y = 270
	f.Bird.Velocity = -2
	if a.ShouldFlap(f) {
		t.Error("Expected no flap while rising clear of the lip")
	}
	f.Bird.Y = 290
	if !a.ShouldFlap(f) {
		t.Error("Expected a flap while rising too slowly")
	}
	f.Bird.Alive = false
	if a.ShouldFlap(f) {
		t.Error("Dead birds do not flap")
	}
}

func TestAutopilotKeepsSessionAlive(t *testing.T) {
	w := NewWorld(testConfig(), newRand(3))
	a := NewAutopilot()
	for i := 0; i < 600; i++ {
		if a.ShouldFlap(newFrame(w, 0, false)) {
			w.Bird.Flap()
		}
		if w.Tick().Died {
			t.Fatalf("Autopilot died at tick %d", i)
		}
	}
}
