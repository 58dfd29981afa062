// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Lockable is what an [AutoLocker] locks.
type Lockable interface {
	State() State
	Lock()
}

// AutoLocker locks a session after a period without activity. The UI calls
// Touch on every user action.
type AutoLocker struct {
	target Lockable
	onLock func()

	lastActivity atomic.Int64
	now          func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLocker creates an idle AutoLocker for target. onLock, if not nil,
// runs after every automatic lock.
func NewAutoLocker(target Lockable, onLock func()) *AutoLocker {
	a := &AutoLocker{target: target, onLock: onLock, now: time.Now}
	a.Touch()
	return a
}

// Touch records user activity.
func (a *AutoLocker) Touch() {
	a.lastActivity.Store(a.now().UnixNano())
}

// Start stops any running watcher and launches a new one that locks the
// target once it has been unlocked and idle for idle. A zero or negative
// idle disables auto-lock. The watcher exits when ctx is cancelled or Stop
// is called.
func (a *AutoLocker) Start(ctx context.Context, idle time.Duration) {
	a.Stop()
	if idle <= 0 {
		return
	}

	a.Touch()

	a.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		t := time.NewTicker(checkInterval(idle))
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				a.check(idle)
			}
		}
	}()
}

func (a *AutoLocker) check(idle time.Duration) {
	if a.target.State() != StateUnlocked {
		return
	}

	last := time.Unix(0, a.lastActivity.Load())
	if a.now().Sub(last) < idle {
		return
	}

	a.target.Lock()
	if a.onLock != nil {
		a.onLock()
	}
}

// Stop cancels the watcher and waits for it to exit. Safe to call when the
// watcher is not running.
func (a *AutoLocker) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.wg.Wait()
}

// checkInterval polls four times per idle period, between 10ms and 1s.
func checkInterval(idle time.Duration) time.Duration {
	return min(max(idle/4, 10*time.Millisecond), time.Second)
}
