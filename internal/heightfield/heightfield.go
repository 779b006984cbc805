// Package heightfield holds the square elevation grids the viewer renders
// and the sources that produce them.
package heightfield

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a grid is empty or not square.
var ErrInvalidSize = errors.New("heightfield: grid must be square with size >= 1")

// Field is an immutable size×size grid of elevations, nominally in [0,1].
// Samples are stored row-major by z, so At(x, z) reads data[z*size+x].
type Field struct {
	size int
	data []float32
}

// New copies data into a new Field. len(data) must equal size*size.
func New(size int, data []float32) (*Field, error) {
	if size < 1 || len(data) != size*size {
		return nil, fmt.Errorf("%w (size %d, %d samples)", ErrInvalidSize, size, len(data))
	}
	f := &Field{size: size, data: make([]float32, len(data))}
	copy(f.data, data)
	return f, nil
}

// FromRows builds a Field from rows indexed [x][z], the layout simulations
// usually hand over. Every row must have len(rows) entries.
func FromRows(rows [][]float64) (*Field, error) {
	size := len(rows)
	if size == 0 {
		return nil, ErrInvalidSize
	}
	data := make([]float32, size*size)
	for x, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w (row %d has %d samples, want %d)", ErrInvalidSize, x, len(row), size)
		}
		for z, h := range row {
			data[z*size+x] = float32(h)
		}
	}
	return &Field{size: size, data: data}, nil
}

// Size returns the grid dimension.
func (f *Field) Size() int {
	return f.size
}

// At returns the elevation at column x, row z. Callers keep x and z in range.
func (f *Field) At(x, z int) float32 {
	return f.data[z*f.size+x]
}

// MinMax returns the lowest and highest elevations.
func (f *Field) MinMax() (lo, hi float32) {
	lo, hi = f.data[0], f.data[0]
	for _, h := range f.data[1:] {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	return lo, hi
}

// Normalize rescales raw elevations by their min–max range into [0,1].
// A flat grid has no range to divide by and maps to all zeros.
func Normalize(raw []float32) []float32 {
	out := make([]float32, len(raw))
	if len(raw) == 0 {
		return out
	}
	lo, hi := raw[0], raw[0]
	for _, h := range raw[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	span := hi - lo
	if span == 0 {
		return out
	}
	for i, h := range raw {
		out[i] = (h - lo) / span
	}
	return out
}
