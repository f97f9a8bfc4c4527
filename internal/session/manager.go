// Package session hands out one engine per save slot and serialises access to it.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CokeFamer_Go/internal/concurrency"
	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/content"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/engine"
	"github.com/osse101/CokeFamer_Go/internal/event"
	"github.com/osse101/CokeFamer_Go/internal/logger"
	"github.com/osse101/CokeFamer_Go/internal/metrics"
	"github.com/osse101/CokeFamer_Go/internal/storage"
)

// Options sizes the engine cache. A zero TTL keeps engines until they are
// pushed out by capacity.
type Options struct {
	Capacity int
	TTL      time.Duration
}

// session is one cached engine. closed is set once the engine has been
// written back and must not be used again.
type session struct {
	mu     sync.Mutex
	engine *engine.Engine
	closed bool
}

// SlotInfo describes one save slot.
type SlotInfo struct {
	Slot   int  `json:"slot"`
	Saved  bool `json:"saved"`
	Active bool `json:"active"`
	Day    int  `json:"day,omitempty"`
}

// Manager owns the engines for all slots. Engines leaving the cache, by
// capacity, expiry or Close, are saved first.
type Manager struct {
	content *content.Registry
	tuning  config.Tuning
	store   storage.Store
	bus     event.Bus

	cache  *expirable.LRU[int, *session]
	locks  *concurrency.LockManager[int]
	closed atomic.Bool
}

// NewManager creates a Manager. store may be nil, in which case engines are
// never loaded or saved.
func NewManager(reg *content.Registry, tuning config.Tuning, store storage.Store, bus event.Bus, opts Options) *Manager {
	m := &Manager{
		content: reg,
		tuning:  tuning,
		store:   store,
		bus:     bus,
		locks:   concurrency.NewLockManager[int](),
	}
	m.cache = expirable.NewLRU[int, *session](opts.Capacity, m.onEvict, opts.TTL)
	return m
}

// onEvict runs under the cache lock, so anyone looking the slot up again
// waits until the save below has finished.
func (m *Manager) onEvict(slot int, s *session) {
	metrics.ActiveSessions.Dec()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	log := slog.Default().With(logger.AttrKeySlot, slot)
	log.Debug(LogMsgSessionEvicted)
	if m.store == nil {
		return
	}
	if err := s.engine.SaveToStorage(context.Background(), slot); err != nil {
		log.Warn(LogMsgEvictSaveFail, "error", err)
	}
}

// open returns the cached session for slot, loading it on a miss.
func (m *Manager) open(ctx context.Context, slot int) (*session, error) {
	if s, ok := m.cache.Get(slot); ok {
		return s, nil
	}

	mu := m.locks.GetLock(slot)
	mu.Lock()
	defer mu.Unlock()

	if s, ok := m.cache.Get(slot); ok {
		return s, nil
	}
	// An expired entry is invisible to Get but still holds unsaved state.
	m.cache.Remove(slot)

	e := engine.New(m.content, m.tuning, m.store, m.bus, slot)
	if m.store != nil {
		if _, err := e.LoadFromStorage(ctx, slot); err != nil {
			return nil, err
		}
	}
	s := &session{engine: e}
	m.cache.Add(slot, s)
	metrics.ActiveSessions.Inc()
	logger.FromContext(ctx).Debug(LogMsgSessionOpened, logger.AttrKeySlot, slot, "day", e.Day())
	return s, nil
}

// With runs fn with exclusive use of the engine for slot. fn must not call
// back into the Manager.
func (m *Manager) With(ctx context.Context, slot int, fn func(*engine.Engine) error) error {
	if err := storage.ValidateSlot(slot); err != nil {
		return err
	}
	for {
		if m.closed.Load() {
			return domain.ErrSessionsClosed
		}
		s, err := m.open(ctx, slot)
		if err != nil {
			return err
		}

		s.mu.Lock()
		if s.closed {
			// Evicted between lookup and lock; it has been saved, so reload.
			s.mu.Unlock()
			continue
		}
		err = fn(s.engine)
		s.mu.Unlock()
		return err
	}
}

// Delete drops the slot's engine without saving it and erases its save.
func (m *Manager) Delete(ctx context.Context, slot int) error {
	if err := storage.ValidateSlot(slot); err != nil {
		return err
	}
	if m.closed.Load() {
		return domain.ErrSessionsClosed
	}

	mu := m.locks.GetLock(slot)
	mu.Lock()
	defer mu.Unlock()

	if s, ok := m.cache.Peek(slot); ok {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	}
	m.cache.Remove(slot)

	if m.store == nil {
		return nil
	}
	if err := storage.DeleteSlot(ctx, m.store, slot); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSlotDeleted, logger.AttrKeySlot, slot)
	return nil
}

// Slots lists every save slot.
func (m *Manager) Slots(ctx context.Context) ([]SlotInfo, error) {
	out := make([]SlotInfo, 0, storage.MaxSlots)
	for slot := 1; slot <= storage.MaxSlots; slot++ {
		info := SlotInfo{Slot: slot}
		if m.store != nil {
			_, ok, err := storage.LoadSlot(ctx, m.store, slot)
			if err != nil {
				return nil, err
			}
			info.Saved = ok
		}
		if s, ok := m.cache.Peek(slot); ok {
			s.mu.Lock()
			if !s.closed {
				info.Active = true
				info.Day = s.engine.Day()
			}
			s.mu.Unlock()
		}
		out = append(out, info)
	}
	return out, nil
}

// Flush saves every cached engine without evicting it.
func (m *Manager) Flush(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	var errs []error
	for _, slot := range m.cache.Keys() {
		s, ok := m.cache.Peek(slot)
		if !ok {
			continue
		}
		s.mu.Lock()
		if !s.closed {
			if err := s.engine.SaveToStorage(ctx, slot); err != nil {
				errs = append(errs, err)
			}
		}
		s.mu.Unlock()
	}
	return errors.Join(errs...)
}

// Close saves every engine and refuses further use.
func (m *Manager) Close(ctx context.Context) error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := m.Flush(ctx)
	for _, s := range m.cache.Values() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	}
	m.cache.Purge()
	return err
}

// Len is the number of cached engines.
func (m *Manager) Len() int {
	return m.cache.Len()
}

// CheckHealth reports whether sessions can still be opened and saved.
func (m *Manager) CheckHealth(ctx context.Context) error {
	if m.closed.Load() {
		return domain.ErrSessionsClosed
	}
	if m.store == nil {
		return nil
	}
	_, _, err := storage.LoadSlot(ctx, m.store, 1)
	return err
}
