package store

import (
	"context"
	"fmt"
)

type blobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

type sealer interface {
	Seal(ctx context.Context, plaintext []byte) ([]byte, error)
	Open(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// sealedStore encrypts blobs before they reach the inner store.
type sealedStore struct {
	inner  blobStore
	sealer sealer
}

func NewSealedStore(inner blobStore, s sealer) *sealedStore {
	return &sealedStore{inner: inner, sealer: s}
}

func (s *sealedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	plain, err := s.sealer.Open(ctx, data)
	if err != nil {
		return nil, false, fmt.Errorf("open %s: %w", key, err)
	}
	return plain, true, nil
}

func (s *sealedStore) Set(ctx context.Context, key string, data []byte) error {
	sealed, err := s.sealer.Seal(ctx, data)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}
