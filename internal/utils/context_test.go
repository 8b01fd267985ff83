// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-token-auth/models"
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
	want := models.User{ID: 1, Username: "fastcampus", Email: "fastcampus@fastcampus.com"}
	ctx := WithIdentity(context.Background(), want)

	user, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user != want {
		t.Errorf("expected %+v, got %+v", want, user)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	user, ok := GetIdentityFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if user != (models.User{}) {
		t.Errorf("expected zero user, got %+v", user)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "fastcampus")

	_, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for non-user value, got true")
	}
}

func TestGetIdentityFromContext_DoesNotLeakToParent(t *testing.T) {
	parent := context.Background()
	_ = WithIdentity(parent, models.User{ID: 1, Username: "fastcampus"})

	if _, ok := GetIdentityFromContext(parent); ok {
		t.Fatal("identity must not be visible in the parent context")
	}
}
