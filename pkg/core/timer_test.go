package core

import "testing"

func TestPacerFirstTickImmediate(t *testing.T) {
	p := NewPacer(10)
	if !p.Ready() {
		t.Fatalf("pacer not ready on first poll")
	}
}

func TestPacerThrottles(t *testing.T) {
	p := NewPacer(1)
	p.Ready()
	if p.Ready() {
		t.Fatalf("pacer allowed a second tick immediately")
	}
}
