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

func TestRequestIDCtxKey(t *testing.T) {
	if RequestIDCtxKey.String() != "requestID" {
		t.Errorf("expected 'requestID', got '%s'", RequestIDCtxKey.String())
	}
}

func TestGetRequestIDFromContext_Success(t *testing.T) {
	ctx := WithRequestID(context.Background(), "0190-abc")

	requestID, ok := GetRequestIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if requestID != "0190-abc" {
		t.Errorf("expected requestID=0190-abc, got %s", requestID)
	}
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	requestID, ok := GetRequestIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false for missing request id")
	}
	if requestID != "" {
		t.Errorf("expected empty request id, got %s", requestID)
	}
}

func TestGetRequestIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)

	if _, ok := GetRequestIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}

func TestGetRequestIDFromContext_Empty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")

	if _, ok := GetRequestIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty request id")
	}
}
