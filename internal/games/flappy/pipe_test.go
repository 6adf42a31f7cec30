package flappy

import (
	"errors"
	"testing"
)

func TestNewPipe(t *testing.T) {
	params := DefaultPipeParams()
	params.X = 500
	params.Height = 200

	p, err := NewPipe(params)
	if err != nil {
		t.Fatalf("NewPipe() failed: %v", err)
	}
	if p.Kind != PipeTop || p.X != 500 || p.Y != 0 || p.Width != 50 || p.Height != 200 || p.Speed != 3 {
		t.Errorf("Unexpected pipe: %+v", p)
	}
}

func TestNewPipeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PipeParams)
	}{
		{"zero width", func(p *PipeParams) { p.Width = 0 }},
		{"negative height", func(p *PipeParams) { p.Height = -1 }},
		{"zero speed", func(p *PipeParams) { p.Speed = 0 }},
		{"unknown kind", func(p *PipeParams) { p.Kind = PipeKind(7) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultPipeParams()
			tt.mutate(&params)
			if _, err := NewPipe(params); !errors.Is(err, ErrInvalidPipe) {
				t.Errorf("Expected ErrInvalidPipe, got %v", err)
			}
		})
	}
}

func TestPipeAdvanceAndOut(t *testing.T) {
	p, err := NewPipe(PipeParams{Kind: PipeBottom, X: 0, Y: 300, Width: 50, Height: 212, Speed: 3})
	if err != nil {
		t.Fatalf("NewPipe() failed: %v", err)
	}

	prev := p.X
	for i := 0; i < 16; i++ {
		p.Advance()
		if p.X >= prev {
			t.Fatalf("X did not decrease: %v -> %v", prev, p.X)
		}
		prev = p.X
		if p.Out() {
			t.Fatalf("Pipe out too early at x=%v", p.X)
		}
	}

	// x = -48, then -51: right edge -1 < 0
	p.Advance()
	if !p.Out() {
		t.Errorf("Expected pipe to be out at x=%v", p.X)
	}
}

func TestPipeOutBoundary(t *testing.T) {
	// Right edge exactly at 0 is still on screen
	p := Pipe{X: -50, Width: 50, Speed: 3}
	if p.Out() {
		t.Error("Pipe with right edge at 0 should not be out")
	}
}

func TestPipeKindString(t *testing.T) {
	if PipeTop.String() != "top" || PipeBottom.String() != "bottom" {
		t.Errorf("Unexpected names: %s %s", PipeTop, PipeBottom)
	}
}
