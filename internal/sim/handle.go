package sim

import (
	"sync"
	"sync/atomic"
)

var handleSeq atomic.Uint64

// Handle owns one running instance's recurring frame schedule.
// Every scheduled frame carries the handle and must check Alive before
// touching game state; Cancel stops the schedule.
type Handle struct {
	id       uint64
	alive    atomic.Bool
	once     sync.Once
	mu       sync.Mutex
	onCancel []func()
}

// NewHandle returns a live handle.
func NewHandle() *Handle {
	h := &Handle{id: handleSeq.Add(1)}
	h.alive.Store(true)
	return h
}

// ID identifies the handle in logs.
func (h *Handle) ID() uint64 {
	if h == nil {
		return 0
	}
	return h.id
}

// Alive reports whether the schedule is still running. A nil handle is dead.
func (h *Handle) Alive() bool {
	return h != nil && h.alive.Load()
}

// OnCancel registers a detach hook (input listeners, timers) run once on
// Cancel. Registering on a dead handle runs the hook immediately.
func (h *Handle) OnCancel(fn func()) {
	if h == nil || fn == nil {
		return
	}
	h.mu.Lock()
	if h.alive.Load() {
		h.onCancel = append(h.onCancel, fn)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	fn()
}

// Cancel marks the handle dead and runs the detach hooks in reverse order
// of registration. It is synchronous and idempotent; nil is allowed.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.mu.Lock()
		h.alive.Store(false)
		hooks := h.onCancel
		h.onCancel = nil
		h.mu.Unlock()

		for i := len(hooks) - 1; i >= 0; i-- {
			hooks[i]()
		}
	})
}
