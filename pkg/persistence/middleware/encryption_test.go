package middleware_test

import (
	"context"
	"crypto/rand"
	"io"
	"testing"

	"github.com/aretw0/fabricmock/pkg/adapters/memory"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/persistence/middleware"
	"github.com/aretw0/fabricmock/pkg/ports"
)

func generateKey(t *testing.T) []byte {
	k := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, k); err != nil {
		t.Fatal(err)
	}
	return k
}

func encrypted(t *testing.T, next ports.SnapshotStore, cfg middleware.EncryptionConfig) ports.SnapshotStore {
	t.Helper()
	mw, err := middleware.NewEncryptionMiddleware(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return mw(next)
}

func secretSnapshot(root domain.RootTag, label string) *domain.TreeSnapshot {
	return &domain.TreeSnapshot{
		RootTag: root,
		Children: []domain.NodeSnapshot{
			{Tag: 1, ViewName: "TextInput", Props: domain.Props{"value": label}, Handle: "input"},
		},
	}
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	underlying := memory.NewStore()
	secure := encrypted(t, underlying, middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	ctx := context.Background()

	if err := secure.Save(ctx, secretSnapshot(5, "my-secret-sauce")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The underlying store only sees the envelope.
	stored, err := underlying.Load(ctx, 5)
	if err != nil {
		t.Fatalf("Underlying load failed: %v", err)
	}
	if len(stored.Children) != 1 || stored.Children[0].ViewName != middleware.EnvelopeViewName {
		t.Fatalf("Expected envelope, got %+v", stored.Children)
	}
	if stored.RootTag != 5 {
		t.Errorf("Expected root tag to stay readable, got %d", stored.RootTag)
	}

	loaded, err := secure.Load(ctx, 5)
	if err != nil {
		t.Fatalf("Load via middleware failed: %v", err)
	}
	if loaded.Children[0].Props["value"] != "my-secret-sauce" {
		t.Errorf("Expected 'my-secret-sauce', got %v", loaded.Children[0].Props["value"])
	}
	if loaded.Children[0].Handle != "input" {
		t.Errorf("Expected handle 'input', got %v", loaded.Children[0].Handle)
	}
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	underlying := memory.NewStore()
	oldKey := generateKey(t)
	newKey := generateKey(t)
	ctx := context.Background()

	oldStore := encrypted(t, underlying, middleware.EncryptionConfig{ActiveKey: oldKey})
	if err := oldStore.Save(ctx, secretSnapshot(1, "old")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	newStore := encrypted(t, underlying, middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})
	loaded, err := newStore.Load(ctx, 1)
	if err != nil {
		t.Fatalf("Load with rotated key failed: %v", err)
	}
	if loaded.Children[0].Props["value"] != "old" {
		t.Errorf("Decryption with fallback key failed")
	}

	if err := newStore.Save(ctx, secretSnapshot(1, "new")); err != nil {
		t.Fatalf("Save with new key failed: %v", err)
	}
	if _, err := oldStore.Load(ctx, 1); err == nil {
		t.Error("Expected failure when loading new-key encryption with old-key middleware")
	}
}

func TestEncryptionMiddleware_PlainSnapshotRejected(t *testing.T) {
	underlying := memory.NewStore()
	ctx := context.Background()
	if err := underlying.Save(ctx, secretSnapshot(2, "plain")); err != nil {
		t.Fatal(err)
	}

	secure := encrypted(t, underlying, middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	if _, err := secure.Load(ctx, 2); err == nil {
		t.Error("Expected plain snapshot to be rejected")
	}
}

func TestEncryptionMiddleware_InvalidKey(t *testing.T) {
	_, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short-key")})
	if err != middleware.ErrInvalidKey {
		t.Errorf("Expected ErrInvalidKey, got %v", err)
	}
}

func TestEncryptionMiddleware_Contract(t *testing.T) {
	ports.RunSnapshotStoreContract(t, encrypted(t, memory.NewStore(), middleware.EncryptionConfig{ActiveKey: generateKey(t)}))
}
