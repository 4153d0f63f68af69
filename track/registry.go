package track

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/gostkin/pointers/handle"
)

var (
	ErrClosed = errors.New("track registry closed")
	ErrLeaked = errors.New("allocations still live at close")
)

// Allocation is one live record in the registry. Destroyed marks a
// half-dead allocation: the value's destructor has run, but Weak
// handles still pin the count block.
type Allocation struct {
	ID        uint64
	Strong    uint32
	Weak      uint32
	Destroyed bool
}

// Registry implements handle.Observer, maintaining the live allocation
// set keyed by allocation ID. Register it with handle.Subscribe.
type Registry struct {
	live   map[uint64]*Allocation
	logger *zap.Logger
	mu     sync.RWMutex
	closed bool
}

// New creates an empty registry with a no-op logger.
func New() *Registry {
	return &Registry{
		live:   make(map[uint64]*Allocation),
		logger: zap.NewNop(),
	}
}

// SetLogger configures the registry's logger.
func (r *Registry) SetLogger(l *zap.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}

// OnHandleEvent implements handle.Observer.
func (r *Registry) OnHandleEvent(e handle.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	switch e.Type {
	case handle.EventCreated:
		r.live[e.ID] = &Allocation{ID: e.ID, Strong: e.Strong, Weak: e.Weak}
		r.logger.Debug("allocation tracked", zap.Uint64("id", e.ID))
	case handle.EventRetained, handle.EventReleased:
		if a, ok := r.live[e.ID]; ok {
			a.Strong = e.Strong
			a.Weak = e.Weak
		}
	case handle.EventDestroyed:
		if a, ok := r.live[e.ID]; ok {
			a.Strong = 0
			a.Weak = e.Weak
			a.Destroyed = true
		}
		r.logger.Debug("value destroyed", zap.Uint64("id", e.ID), zap.Uint32("weak", e.Weak))
	case handle.EventFreed:
		delete(r.live, e.ID)
		r.logger.Debug("allocation freed", zap.Uint64("id", e.ID))
	}
}

// Len returns the number of live allocations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.live)
}

// Get returns the record for one allocation ID.
func (r *Registry) Get(id uint64) (Allocation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.live[id]
	if !ok {
		return Allocation{}, false
	}
	return *a, true
}

// Live returns a snapshot of all live allocations, ordered by ID.
func (r *Registry) Live() []Allocation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Allocation, 0, len(r.live))
	for _, a := range r.live {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Each iterates over live allocations in ID order until fn returns false.
func (r *Registry) Each(fn func(Allocation) bool) {
	for _, a := range r.Live() {
		if !fn(a) {
			return
		}
	}
}

// Close stops recording. It returns an error wrapping ErrLeaked when
// allocations are still live, logging each one, and ErrClosed when the
// registry was already closed.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.closed = true

	if len(r.live) == 0 {
		return nil
	}

	for _, a := range r.live {
		r.logger.Warn("allocation leaked",
			zap.Uint64("id", a.ID),
			zap.Uint32("strong", a.Strong),
			zap.Uint32("weak", a.Weak),
			zap.Bool("destroyed", a.Destroyed),
		)
	}
	return fmt.Errorf("%w: %d", ErrLeaked, len(r.live))
}
