package heightfield

import (
	"context"

	"github.com/aquilax/go-perlin"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-viewer/internal/logger"
)

// Noise parameters for the default generator.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 6
	noiseScale   = 4.0 // Noise periods across the whole grid
)

// NoiseSource produces seeded fractal height fields. It stands in for an
// external terrain simulation.
type NoiseSource struct {
	Alpha   float64
	Beta    float64
	Octaves int32
	Scale   float64

	// Progress, if set, receives completion percentages while generating.
	Progress func(percent int)
}

// NewNoiseSource returns a source with the default noise parameters.
func NewNoiseSource() *NoiseSource {
	return &NoiseSource{
		Alpha:   noiseAlpha,
		Beta:    noiseBeta,
		Octaves: noiseOctaves,
		Scale:   noiseScale,
	}
}

// Generate builds a size×size normalized field. The same seed always yields
// the same field. Generation stops early if ctx is cancelled.
func (s *NoiseSource) Generate(ctx context.Context, size int, seed int64) (*Field, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	p := perlin.NewPerlin(s.Alpha, s.Beta, s.Octaves, seed)
	s.report(0)

	raw := make([]float32, size*size)
	inv := s.Scale / float64(size)
	for z := 0; z < size; z++ {
		if z%32 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			s.report(90 * z / size)
		}
		for x := 0; x < size; x++ {
			raw[z*size+x] = float32(p.Noise2D(float64(x)*inv, float64(z)*inv))
		}
	}

	f := &Field{size: size, data: Normalize(raw)}
	s.report(100)
	logger.Debug("noise field generated",
		zap.Int("size", size),
		zap.Int64("seed", seed),
	)
	return f, nil
}

func (s *NoiseSource) report(percent int) {
	if s.Progress != nil {
		s.Progress(percent)
	}
}
