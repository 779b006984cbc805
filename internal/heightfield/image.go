package heightfield

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
)

// LoadImage reads a grayscale heightmap from disk. See DecodeImage.
// Files with a .tga extension are decoded with DecodeTGA.
func LoadImage(path string) (*Field, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return loadTGA(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open heightmap: %w", err)
	}
	defer file.Close()

	f, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("decode heightmap %s: %w", path, err)
	}
	return f, nil
}

// DecodeImage converts an image to a normalized Field. Non-square images are
// cropped to their largest top-left square; pixel luminance is taken at
// 16-bit precision before min–max normalization.
func DecodeImage(r io.Reader) (*Field, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// FromImage converts a decoded image to a normalized Field.
func FromImage(img image.Image) (*Field, error) {
	b := img.Bounds()
	size := min(b.Dx(), b.Dy())
	if size < 1 {
		return nil, ErrInvalidSize
	}

	raw := make([]float32, size*size)
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			raw[z*size+x] = luminance(img.At(b.Min.X+x, b.Min.Y+z))
		}
	}
	return &Field{size: size, data: Normalize(raw)}, nil
}

// luminance returns Rec. 601 luma of c scaled to [0,1].
func luminance(c color.Color) float32 {
	r, g, b, _ := c.RGBA()
	y := 0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b)
	return y / 0xffff
}

func loadTGA(path string) (*Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open heightmap: %w", err)
	}
	img, err := DecodeTGA(data)
	if err != nil {
		return nil, fmt.Errorf("decode heightmap %s: %w", path, err)
	}
	return FromImage(img)
}
