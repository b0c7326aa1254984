package ringfield

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"section-2", "section-2"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := newTestGame(t)
	g.Screenshot("a")
	g.Screenshot("b")
	g.Screenshot("c")
	if len(g.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(g.screenshotQueue))
	}
	if g.screenshotQueue[0] != "a" || g.screenshotQueue[1] != "b" || g.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", g.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128,
		0, 0, 0, 0,
		10, 20, 30, 255,
	}
	img := unpremultiply(pixels, 3, 1)
	if got := img.NRGBAAt(0, 0); got.R != 255 || got.G != 127 || got.B != 0 || got.A != 128 {
		t.Errorf("half alpha = %v, want {255 127 0 128}", got)
	}
	if got := img.NRGBAAt(1, 0); got.A != 0 {
		t.Errorf("transparent = %v", got)
	}
	if got := img.NRGBAAt(2, 0); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Errorf("opaque = %v, want unchanged", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	if err := writePNG(path, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
