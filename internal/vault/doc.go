// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the client-side vault session.
//
// A [Session] owns the lock/unlock lifecycle of one identity's vault:
//
//	Locked --Unlock--> Unlocking --ok--> Unlocked --Lock--> Locked
//	                       |
//	                       +--failure--> Locked (ErrUnlockFailed / ErrStore)
//
// While unlocked the session holds the derived key and the decrypted record
// set in memory. Every mutation goes through the record store and is
// followed by a full reload, so the in-memory set always mirrors the store.
// Records that fail to decrypt do not abort the unlock; they are reported
// through [Session.RecoverableErrors].
//
// [AutoLocker] locks an unlocked session after a period without activity.
package vault
