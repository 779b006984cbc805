// Package pipeline produces height fields in the background and turns them
// into published terrain meshes.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-viewer/internal/engine/terrain"
	"github.com/Faultbox/terrain-viewer/internal/heightfield"
	"github.com/Faultbox/terrain-viewer/internal/logger"
)

// ErrClosed is returned by Request after Close.
var ErrClosed = errors.New("pipeline: closed")

// Source produces a height field for a seed. Sources that are not seeded
// ignore it.
type Source interface {
	Load(ctx context.Context, seed int64) (*heightfield.Field, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, seed int64) (*heightfield.Field, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context, seed int64) (*heightfield.Field, error) {
	return f(ctx, seed)
}

// ImageSource loads a grayscale heightmap from path on every request.
func ImageSource(path string) Source {
	return SourceFunc(func(ctx context.Context, _ int64) (*heightfield.Field, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return heightfield.LoadImage(path)
	})
}

// NoiseSource generates a size×size Perlin field per seed.
func NoiseSource(ns *heightfield.NoiseSource, size int) Source {
	return SourceFunc(func(ctx context.Context, seed int64) (*heightfield.Field, error) {
		return ns.Generate(ctx, size, seed)
	})
}

// Pipeline runs one worker goroutine that loads fields from a Source and
// rebuilds the mesh in a Store. Requests made while the worker is busy are
// coalesced: only the newest pending seed is produced next.
type Pipeline struct {
	source Source
	store  *terrain.Store
	target int

	mu       sync.Mutex
	closed   bool
	requests chan int64

	busy     atomic.Bool
	progress atomic.Int32
	lastErr  atomic.Pointer[error]

	wg sync.WaitGroup
}

// New creates a pipeline publishing meshes of at most target cells per side
// into store.
func New(source Source, store *terrain.Store, target int) *Pipeline {
	return &Pipeline{
		source:   source,
		store:    store,
		target:   target,
		requests: make(chan int64, 1),
	}
}

// Start launches the worker. It stops when ctx is cancelled or Close is called.
func (p *Pipeline) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case seed, ok := <-p.requests:
				if !ok {
					return
				}
				p.produce(ctx, seed)
			}
		}
	}()
}

// Request asks for a field for seed, replacing any request not yet started.
func (p *Pipeline) Request(seed int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	select {
	case dropped := <-p.requests:
		logger.Debug("pending request superseded", zap.Int64("seed", dropped))
	default:
	}
	p.requests <- seed
	return nil
}

// Close stops accepting requests and waits for the worker to finish the
// current one.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.requests)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Busy reports whether a field is being produced.
func (p *Pipeline) Busy() bool {
	return p.busy.Load()
}

// Progress returns the last reported progress of the running request in
// percent.
func (p *Pipeline) Progress() int {
	return int(p.progress.Load())
}

// ReportProgress records progress for the running request. It is safe to
// call from any goroutine.
func (p *Pipeline) ReportProgress(percent int) {
	p.progress.Store(int32(percent))
}

// Err returns the error of the most recent request, or nil if it succeeded.
func (p *Pipeline) Err() error {
	if e := p.lastErr.Load(); e != nil {
		return *e
	}
	return nil
}

func (p *Pipeline) produce(ctx context.Context, seed int64) {
	p.busy.Store(true)
	p.progress.Store(0)
	defer p.busy.Store(false)

	err := p.run(ctx, seed)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("terrain production failed", zap.Int64("seed", seed), zap.Error(err))
	}
	p.lastErr.Store(&err)
}

func (p *Pipeline) run(ctx context.Context, seed int64) error {
	logger.Info("producing height field", zap.Int64("seed", seed))

	field, err := p.source.Load(ctx, seed)
	if err != nil {
		return fmt.Errorf("loading height field: %w", err)
	}
	p.progress.Store(100)

	lo, hi := field.MinMax()
	logger.Debug("height field ready",
		zap.Int("size", field.Size()),
		zap.Float32("min", lo),
		zap.Float32("max", hi),
	)

	if _, _, err := p.store.Rebuild(ctx, field, p.target); err != nil {
		return fmt.Errorf("building mesh: %w", err)
	}
	return nil
}
