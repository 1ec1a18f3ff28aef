// Package cache provides key-value stores for generated artifacts.
package cache

import (
	"context"
	"time"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is a key-value store with expiration
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Flush(ctx context.Context) error
}

// Nop is a store which never keeps anything
type Nop struct{}

// Get always misses
func (Nop) Get(context.Context, string) (string, bool, error) { return "", false, nil }

// Set discards the value
func (Nop) Set(context.Context, string, string, time.Duration) error { return nil }

// Flush does nothing
func (Nop) Flush(context.Context) error { return nil }
