package vault

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLockable struct {
	mu    sync.Mutex
	state State
	locks atomic.Int64
}

func (f *fakeLockable) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeLockable) Lock() {
	f.mu.Lock()
	f.state = StateLocked
	f.mu.Unlock()
	f.locks.Add(1)
}

func (f *fakeLockable) unlock() {
	f.mu.Lock()
	f.state = StateUnlocked
	f.mu.Unlock()
}

func TestAutoLocker_LocksAfterIdle(t *testing.T) {
	target := &fakeLockable{state: StateUnlocked}
	var notified atomic.Int64
	a := NewAutoLocker(target, func() { notified.Add(1) })

	a.Start(context.Background(), 30*time.Millisecond)
	defer a.Stop()

	assert.Eventually(t, func() bool { return target.State() == StateLocked }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(1), target.locks.Load())
	assert.Equal(t, int64(1), notified.Load())
}

func TestAutoLocker_TouchKeepsUnlocked(t *testing.T) {
	target := &fakeLockable{state: StateUnlocked}
	a := NewAutoLocker(target, nil)

	a.Start(context.Background(), 80*time.Millisecond)
	defer a.Stop()

	for range 10 {
		a.Touch()
		time.Sleep(15 * time.Millisecond)
	}

	assert.Equal(t, StateUnlocked, target.State())
	assert.Zero(t, target.locks.Load())
}

func TestAutoLocker_IgnoresLockedTarget(t *testing.T) {
	target := &fakeLockable{state: StateLocked}
	a := NewAutoLocker(target, nil)

	a.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	a.Stop()

	assert.Zero(t, target.locks.Load())
}

func TestAutoLocker_RelocksAfterNextUnlock(t *testing.T) {
	target := &fakeLockable{state: StateUnlocked}
	a := NewAutoLocker(target, nil)

	a.Start(context.Background(), 20*time.Millisecond)
	defer a.Stop()

	assert.Eventually(t, func() bool { return target.locks.Load() == 1 }, time.Second, 5*time.Millisecond)

	target.unlock()
	a.Touch()

	assert.Eventually(t, func() bool { return target.locks.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestAutoLocker_ZeroIdleDisables(t *testing.T) {
	target := &fakeLockable{state: StateUnlocked}
	a := NewAutoLocker(target, nil)

	a.Start(context.Background(), 0)
	time.Sleep(30 * time.Millisecond)
	a.Stop()

	assert.Zero(t, target.locks.Load())
}

func TestAutoLocker_StopWithoutStart(t *testing.T) {
	a := NewAutoLocker(&fakeLockable{}, nil)

	assert.NotPanics(t, func() { a.Stop() })
}

func TestAutoLocker_ContextCancelStopsWatcher(t *testing.T) {
	target := &fakeLockable{state: StateUnlocked}
	a := NewAutoLocker(target, nil)
	ctx, cancel := context.WithCancel(context.Background())

	a.Start(ctx, 50*time.Millisecond)
	cancel()
	a.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, target.locks.Load())
}

func TestAutoLocker_WithSession(t *testing.T) {
	s, _ := newMemorySession(t)
	a := NewAutoLocker(s, nil)

	if err := s.Unlock(context.Background(), correct); err != nil {
		t.Fatal(err)
	}
	a.Start(context.Background(), 20*time.Millisecond)
	defer a.Stop()

	assert.Eventually(t, func() bool { return s.State() == StateLocked }, time.Second, 5*time.Millisecond)
}

func TestCheckInterval(t *testing.T) {
	assert.Equal(t, 10*time.Millisecond, checkInterval(time.Millisecond))
	assert.Equal(t, 25*time.Millisecond, checkInterval(100*time.Millisecond))
	assert.Equal(t, time.Second, checkInterval(time.Hour))
}
