package heightfield

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func tgaHeader(imageType byte, width, height int, bpp byte, topToBottom bool) []byte {
	h := make([]byte, tgaHeaderLen)
	h[2] = imageType
	h[12], h[13] = byte(width), byte(width>>8)
	h[14], h[15] = byte(height), byte(height>>8)
	h[16] = bpp
	if topToBottom {
		h[17] = 0x20
	}
	return h
}

func TestDecodeTGATrueColor(t *testing.T) {
	// 2x1, bottom-up, BGR order.
	data := append(tgaHeader(tgaTrueColor, 2, 1, 24, false),
		10, 20, 30,
		40, 50, 60,
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	if got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA); got != (color.NRGBA{R: 30, G: 20, B: 10, A: 255}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
	if got := color.NRGBAModel.Convert(img.At(1, 0)).(color.NRGBA); got != (color.NRGBA{R: 60, G: 50, B: 40, A: 255}) {
		t.Errorf("pixel (1,0) = %v", got)
	}
}

func TestDecodeTGAOrientation(t *testing.T) {
	rows := []byte{0, 255} // first stored row, second stored row
	for _, tt := range []struct {
		name        string
		topToBottom bool
		topValue    uint8
	}{
		{"bottom-up", false, 255},
		{"top-down", true, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data := append(tgaHeader(tgaGray, 1, 2, 8, tt.topToBottom), rows...)
			img, err := DecodeTGA(data)
			if err != nil {
				t.Fatalf("DecodeTGA: %v", err)
			}
			top := color.GrayModel.Convert(img.At(0, 0)).(color.Gray).Y
			if top != tt.topValue {
				t.Errorf("top pixel = %d, want %d", top, tt.topValue)
			}
		})
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 4x1 gray: a run of three 7s followed by one raw 9.
	data := append(tgaHeader(tgaGrayRLE, 4, 1, 8, true),
		0x82, 7,
		0x00, 9,
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	want := []uint8{7, 7, 7, 9}
	for x, w := range want {
		if got := color.GrayModel.Convert(img.At(x, 0)).(color.Gray).Y; got != w {
			t.Errorf("pixel %d = %d, want %d", x, got, w)
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", func() []byte { h := tgaHeader(1, 1, 1, 8, false); h[1] = 1; return h }()},
		{"unsupported type", tgaHeader(1, 1, 1, 8, false)},
		{"bad gray depth", tgaHeader(tgaGray, 1, 1, 16, false)},
		{"bad colour depth", tgaHeader(tgaTrueColor, 1, 1, 16, false)},
		{"truncated pixels", append(tgaHeader(tgaTrueColor, 2, 2, 24, false), 1, 2, 3)},
		{"truncated run", tgaHeader(tgaTrueColorRLE, 2, 2, 24, false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); !errors.Is(err, ErrTGA) {
				t.Errorf("expected ErrTGA, got %v", err)
			}
		})
	}
}

func TestLoadImageTGA(t *testing.T) {
	// 3x3 gray ramp along x.
	data := tgaHeader(tgaGray, 3, 3, 8, true)
	for z := 0; z < 3; z++ {
		data = append(data, 0, 100, 200)
	}
	path := filepath.Join(t.TempDir(), "ramp.TGA")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if f.Size() != 3 {
		t.Fatalf("expected size 3, got %d", f.Size())
	}
	if f.At(0, 1) != 0 || f.At(2, 1) != 1 {
		t.Errorf("expected normalized ramp, got %f..%f", f.At(0, 1), f.At(2, 1))
	}
}
