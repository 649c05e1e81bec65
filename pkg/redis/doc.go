// Package redis opens go-redis clients for the Redis document backend.
//
// Open parses a redis:// or rediss:// URL, applies pool and timeout settings
// and pings the server, retrying with a linearly growing delay until the
// server answers or the attempts run out:
//
//	client, err := redis.Open(ctx, os.Getenv("YAMLRES_REDIS_URL"),
//		redis.WithRetry(5, time.Second),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store, err := fsys.NewRedis(client, "yamlres:")
//
// Healthcheck returns a func(context.Context) error that pings the client.
//
// Errors are wrapped with [errors.Join] so that both the sentinel
// ([ErrEmptyConnectionURL], [ErrFailedToParseURL], [ErrConnectionFailed],
// [ErrHealthcheckFailed]) and the underlying cause stay inspectable.
package redis
