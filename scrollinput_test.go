package ringfield

import "testing"

func TestScrollInputGlide(t *testing.T) {
	s := NewScrollInput(14)
	s.SetTarget(0.5)
	if !s.Gliding() {
		t.Fatal("not gliding after SetTarget")
	}
	prev := 0.0
	for i := 0; i < 10; i++ {
		p := s.Update(0.1)
		if p < prev {
			t.Fatalf("progress went back: %v -> %v", prev, p)
		}
		prev = p
	}
	if s.Gliding() {
		t.Error("still gliding after 1s")
	}
	if s.Progress() != 0.5 {
		t.Errorf("progress = %v, want 0.5", s.Progress())
	}
}

func TestScrollInputEaseOut(t *testing.T) {
	s := NewScrollInput(14)
	s.SetTarget(1)
	first := s.Update(0.1)
	second := s.Update(0.1) - first
	if first <= second {
		t.Errorf("glide does not decelerate: %v then %v", first, second)
	}
}

func TestScrollInputClamp(t *testing.T) {
	s := NewScrollInput(14)
	s.Set(2)
	if s.Progress() != 1 || s.Target() != 1 {
		t.Errorf("Set(2) -> %v/%v, want 1", s.Progress(), s.Target())
	}
	s.Set(0)
	s.Scroll(-1)
	if s.Target() != 0 || s.Gliding() {
		t.Errorf("scroll above top: target %v gliding %v", s.Target(), s.Gliding())
	}
}

func TestScrollInputWheel(t *testing.T) {
	s := NewScrollInput(10)
	s.Wheel(0)
	if s.Gliding() {
		t.Error("zero wheel delta started a glide")
	}
	s.Wheel(-2) // two notches down
	if want := 2 * wheelViewports / 10; !approxEqual(s.Target(), want, 1e-12) {
		t.Errorf("target = %v, want %v", s.Target(), want)
	}
	s.Wheel(1)
	if want := wheelViewports / 10; !approxEqual(s.Target(), want, 1e-12) {
		t.Errorf("target = %v, want %v", s.Target(), want)
	}
}

func TestScrollInputRetarget(t *testing.T) {
	s := NewScrollInput(14)
	s.SetTarget(1)
	mid := s.Update(0.2)
	s.SetTarget(0)
	if got := s.Update(0); !approxEqual(got, mid, 1e-6) {
		t.Errorf("retarget jumped from %v to %v", mid, got)
	}
	for i := 0; i < 10; i++ {
		s.Update(0.1)
	}
	if s.Progress() != 0 {
		t.Errorf("progress = %v, want 0", s.Progress())
	}
}
