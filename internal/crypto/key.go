// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "sync"

const redacted = "[REDACTED]"

// DerivedKey holds the 256-bit AES key produced by DeriveKey.
//
// The key exists only in client memory. It cannot be printed, logged or
// serialized: String and GoString are redacted, MarshalJSON and MarshalText
// fail. Wipe zeroes the bytes; a wiped key is rejected by the engine.
type DerivedKey struct {
	mu    sync.RWMutex
	bytes []byte
}

func newDerivedKey(b []byte) *DerivedKey {
	return &DerivedKey{bytes: b}
}

// Wipe zeroes the key material. Safe to call more than once and on nil.
func (k *DerivedKey) Wipe() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	Zero(k.bytes)
	k.bytes = nil
}

// IsWiped reports whether the key can no longer be used.
func (k *DerivedKey) IsWiped() bool {
	if k == nil {
		return true
	}
	k.mu.RLock()
	defer k.mu.RUnlock()

	return len(k.bytes) != KeySize
}

// use runs fn with the raw key bytes under a read lock so that a concurrent
// Wipe cannot zero them mid-operation.
func (k *DerivedKey) use(fn func(raw []byte) error) error {
	if k == nil {
		return ErrInvalidKey
	}
	k.mu.RLock()
	defer k.mu.RUnlock()

	if len(k.bytes) != KeySize {
		return ErrInvalidKey
	}
	return fn(k.bytes)
}

func (k *DerivedKey) String() string   { return redacted }
func (k *DerivedKey) GoString() string { return redacted }

func (k *DerivedKey) MarshalJSON() ([]byte, error) { return nil, ErrKeyNotSerializable }
func (k *DerivedKey) MarshalText() ([]byte, error) { return nil, ErrKeyNotSerializable }
