package services

import (
	"context"
	"sync"

	"github.com/yeremiapane/menu-studio/models"
)

// SnapshotLoader fetches snapshots on behalf of viewer sessions. Within one
// session only the newest load may deliver a result: starting a load cancels
// the session's previous one, which then returns ErrStaleResponse even if its
// fetch already finished.
type SnapshotLoader struct {
	repo SnapshotRepository

	mu       sync.Mutex
	seq      uint64
	inflight map[string]loadTicket
}

type loadTicket struct {
	gen    uint64
	cancel context.CancelFunc
}

func NewSnapshotLoader(repo SnapshotRepository) *SnapshotLoader {
	return &SnapshotLoader{repo: repo, inflight: make(map[string]loadTicket)}
}

// Load fetches slug for session. An empty session never supersedes anything.
func (l *SnapshotLoader) Load(ctx context.Context, session, slug string) (*models.Snapshot, error) {
	if session == "" {
		return l.repo.FindBySlug(ctx, slug)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if prev, ok := l.inflight[session]; ok {
		prev.cancel()
	}
	l.seq++
	gen := l.seq
	l.inflight[session] = loadTicket{gen: gen, cancel: cancel}
	l.mu.Unlock()

	snap, err := l.repo.FindBySlug(ctx, slug)

	l.mu.Lock()
	current, ok := l.inflight[session]
	latest := ok && current.gen == gen
	if latest {
		delete(l.inflight, session)
	}
	l.mu.Unlock()

	if !latest {
		return nil, ErrStaleResponse
	}
	return snap, err
}

// Forget cancels whatever session still has in flight.
func (l *SnapshotLoader) Forget(session string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.inflight[session]; ok {
		t.cancel()
		delete(l.inflight, session)
	}
}
