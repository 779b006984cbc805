package terrain

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-viewer/internal/heightfield"
	"github.com/Faultbox/terrain-viewer/internal/logger"
)

// Store publishes the current mesh to the render loop. Builders take a
// ticket, build into fresh buffers and then publish; the renderer reads
// Current every frame without locking. A result whose ticket has been
// superseded by a newer one is discarded.
type Store struct {
	current atomic.Pointer[Mesh]
	issued  atomic.Uint64

	publishMu sync.Mutex
	published uint64
}

// Current returns the latest published mesh, or nil before the first one.
func (s *Store) Current() *Mesh {
	return s.current.Load()
}

// Ticket reserves the next build slot. Later tickets supersede earlier ones.
func (s *Store) Ticket() uint64 {
	return s.issued.Add(1)
}

// Publish makes m current if ticket is the newest one issued. It reports
// whether m was published.
func (s *Store) Publish(ticket uint64, m *Mesh) bool {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	if ticket <= s.published || ticket != s.issued.Load() {
		return false
	}
	s.published = ticket
	s.current.Store(m)
	return true
}

// Rebuild builds a mesh for field and publishes it unless a newer rebuild
// was started meanwhile or ctx was cancelled. It returns the built mesh and
// whether it became current.
func (s *Store) Rebuild(ctx context.Context, field *heightfield.Field, target int) (*Mesh, bool, error) {
	ticket := s.Ticket()

	m, err := Build(field, target)
	if err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	if !s.Publish(ticket, m) {
		logger.Debug("stale mesh discarded", zap.Uint64("ticket", ticket))
		return m, false, nil
	}

	logger.Info("mesh rebuilt",
		zap.Int("grid", m.GridSize),
		zap.Int("step", m.Step),
		zap.Int("source", m.SourceSize),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", m.IndexCount()),
	)
	return m, true, nil
}
