package fsys

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint passed to SCAN.
const scanBatch = 100

// Redis is an FS that stores each document as a string key.
// The key is the key prefix followed by the cleaned document path.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis backend. keyPrefix namespaces all keys,
// e.g. "yamlres:" stores "i18n/en.yml" under "yamlres:i18n/en.yml".
func NewRedis(client redis.UniversalClient, keyPrefix string) (*Redis, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: redis client is required", ErrInvalidConfig)
	}
	return &Redis{client: client, prefix: keyPrefix}, nil
}

// ReadFile returns the value stored for name.
func (r *Redis) ReadFile(ctx context.Context, name string) ([]byte, error) {
	key := r.key(name)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, wrapRedisError(err, key, ErrReadFailed)
	}
	return data, nil
}

// WriteFile stores data for name without expiration.
func (r *Redis) WriteFile(ctx context.Context, name string, data []byte) error {
	key := r.key(name)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return wrapRedisError(err, key, ErrWriteFailed)
	}
	return nil
}

// ReadDir scans for keys below dir and returns their first path segment.
// Like the in-memory backend, a directory exists only while it holds documents.
func (r *Redis) ReadDir(ctx context.Context, dir string) ([]string, error) {
	dir = Clean(dir)
	pattern := escapeGlob(r.prefix) + "*"
	if dir != "." {
		pattern = escapeGlob(r.key(dir)) + "/*"
	}

	var names []string
	iter := r.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, wrapRedisError(err, pattern, ErrListFailed)
	}

	entries := children(names, dir)
	if len(entries) == 0 && dir != "." {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, dir)
	}
	return entries, nil
}

func (r *Redis) key(name string) string {
	return r.prefix + Clean(name)
}

func wrapRedisError(err error, key string, fallback error) error {
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return fmt.Errorf("%w: %q: %w", fallback, key, err)
}

// escapeGlob quotes the characters SCAN MATCH treats specially.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
