package terrain

import (
	"math"
	"testing"
)

func TestBandIndexThresholds(t *testing.T) {
	tests := []struct {
		h    float32
		want int
	}{
		{-0.5, 0},
		{0, 0},
		{0.1999, 0},
		{0.2, 1},
		{0.3999, 1},
		{0.4, 2},
		{0.5, 2},
		{0.6, 3},
		{0.7999, 3},
		{0.8, 4},
		{1, 4},
		{12, 4},
		{float32(math.Inf(1)), 4},
		{float32(math.NaN()), 4},
	}
	for _, tt := range tests {
		if got := BandIndex(tt.h); got != tt.want {
			t.Errorf("BandIndex(%v) = %d, want %d", tt.h, got, tt.want)
		}
	}
}

func TestClassifyColors(t *testing.T) {
	tests := []struct {
		h    float32
		want [3]float32
	}{
		{0.1, [3]float32{0.13, 0.55, 0.13}},
		{0.3, [3]float32{0.42, 0.56, 0.14}},
		{0.5, [3]float32{0.55, 0.35, 0.17}},
		{0.7, [3]float32{0.63, 0.63, 0.63}},
		{0.9, [3]float32{0.94, 0.94, 1.0}},
	}
	for _, tt := range tests {
		if got := Classify(tt.h); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestBandIndexMonotonic(t *testing.T) {
	prev := BandIndex(0)
	for i := 1; i < 1000; i++ {
		h := float32(i) / 1000
		got := BandIndex(h)
		if got < prev {
			t.Fatalf("band decreased from %d to %d at h=%f", prev, got, h)
		}
		prev = got
	}
}

func TestBandsOrdered(t *testing.T) {
	for i := 1; i < len(Bands); i++ {
		if Bands[i].Upper <= Bands[i-1].Upper {
			t.Errorf("band %s upper %f not above %s upper %f",
				Bands[i].Name, Bands[i].Upper, Bands[i-1].Name, Bands[i-1].Upper)
		}
	}
}
