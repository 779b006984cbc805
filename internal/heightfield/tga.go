package heightfield

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrTGA is returned for malformed or unsupported TGA data.
var ErrTGA = errors.New("tga")

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

const tgaHeaderLen = 18

// DecodeTGA decodes uncompressed or RLE TGA images in 8-bit grayscale,
// 24-bit or 32-bit true colour. TGA has no magic number, so it cannot be
// registered with image.Decode; LoadImage picks it by file extension.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderLen {
		return nil, fmt.Errorf("%w: header truncated", ErrTGA)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped images not supported", ErrTGA)
	}

	gray := imageType == tgaGray || imageType == tgaGrayRLE
	rle := imageType == tgaTrueColorRLE || imageType == tgaGrayRLE
	switch {
	case gray && bpp != 8:
		return nil, fmt.Errorf("%w: grayscale depth %d not supported", ErrTGA, bpp)
	case !gray && imageType != tgaTrueColor && imageType != tgaTrueColorRLE:
		return nil, fmt.Errorf("%w: image type %d not supported", ErrTGA, imageType)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("%w: colour depth %d not supported", ErrTGA, bpp)
	}

	offset := tgaHeaderLen + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("%w: image id truncated", ErrTGA)
	}

	d := &tgaDecoder{
		src:         data[offset:],
		bytesPer:    bpp / 8,
		gray:        gray,
		img:         image.NewNRGBA(image.Rect(0, 0, width, height)),
		width:       width,
		height:      height,
		topToBottom: topToBottom,
	}

	var err error
	if rle {
		err = d.decodeRLE()
	} else {
		err = d.decodeRaw()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	src      []byte
	pos      int
	bytesPer int
	gray     bool

	img           *image.NRGBA
	width, height int
	topToBottom   bool
	written       int
}

// pixel reads one pixel from the stream. TGA stores colour as BGR(A).
func (d *tgaDecoder) pixel() (color.NRGBA, error) {
	if d.pos+d.bytesPer > len(d.src) {
		return color.NRGBA{}, fmt.Errorf("%w: pixel data truncated", ErrTGA)
	}
	p := d.src[d.pos : d.pos+d.bytesPer]
	d.pos += d.bytesPer

	if d.gray {
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: 0xff}, nil
	}
	c := color.NRGBA{R: p[2], G: p[1], B: p[0], A: 0xff}
	if d.bytesPer == 4 {
		c.A = p[3]
	}
	return c, nil
}

// put stores c at the next pixel in file order.
func (d *tgaDecoder) put(c color.NRGBA) {
	x := d.written % d.width
	y := d.written / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetNRGBA(x, y, c)
	d.written++
}

func (d *tgaDecoder) total() int {
	return d.width * d.height
}

func (d *tgaDecoder) decodeRaw() error {
	for d.written < d.total() {
		c, err := d.pixel()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) decodeRLE() error {
	for d.written < d.total() {
		if d.pos >= len(d.src) {
			return fmt.Errorf("%w: run data truncated", ErrTGA)
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			c, err := d.pixel()
			if err != nil {
				return err
			}
			for i := 0; i < count && d.written < d.total(); i++ {
				d.put(c)
			}
			continue
		}

		for i := 0; i < count && d.written < d.total(); i++ {
			c, err := d.pixel()
			if err != nil {
				return err
			}
			d.put(c)
		}
	}
	return nil
}
