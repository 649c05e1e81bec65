//go:build integration

package fsys_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/yamlres/pkg/fsys"
	"github.com/dmitrymomot/yamlres/pkg/redis"
)

// Start the test infrastructure with: docker run -p 6379:6379 redis:7
const testRedisURL = "redis://localhost:6379/0"

func TestRedisIntegration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client, err := redis.Open(ctx, testRedisURL, redis.WithRetry(1, time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	prefix := fmt.Sprintf("yamlres-test-%d:", time.Now().UnixNano())
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			_ = client.Del(ctx, keys...).Err()
		}
	})

	store, err := fsys.NewRedis(client, prefix)
	require.NoError(t, err)

	exerciseFS(t, store)
}
