package screenshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedTime() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 6, 789000000, time.UTC)
}

func TestFilename(t *testing.T) {
	c := New("shots", "terrain")
	c.Now = fixedTime

	want := filepath.Join("shots", "terrain_2024-03-09_14-05-06.789.png")
	if got := c.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}

	c = New("", "terrain")
	c.Now = fixedTime
	if got := c.Filename(); got != "terrain_2024-03-09_14-05-06.789.png" {
		t.Errorf("Filename() without dir = %q", got)
	}
}

func TestFromPixelsFlips(t *testing.T) {
	// 1x2: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFromPixelsValidates(t *testing.T) {
	if _, err := FromPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := FromPixels(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	c := New(dir, "terrain")
	c.Now = fixedTime

	pixels := make([]byte, 2*2*4)
	for i := range pixels {
		pixels[i] = 200
	}
	path, err := c.Save(pixels, 2, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("saved image is %dx%d, want 2x2", b.Dx(), b.Dy())
	}
}
