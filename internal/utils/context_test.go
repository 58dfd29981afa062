// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	ctx := WithIdentity(context.Background(), "a@b.com")

	identity, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if identity != "a@b.com" {
		t.Errorf("expected identity=a@b.com, got %s", identity)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	identity, ok := GetIdentityFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if identity != "" {
		t.Errorf("expected empty identity, got %s", identity)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, int64(42))

	_, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetIdentityFromContext_Empty(t *testing.T) {
	ctx := WithIdentity(context.Background(), "")

	_, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for empty identity, got true")
	}
}

func TestGetIdentityFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "a@b.com")

	_, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
