// Package health runs named backend probes in parallel.
//
// A probe is any func(context.Context) error, the shape returned by
// redis.Healthcheck and fsys.S3.Healthcheck:
//
//	resp := health.Run(ctx, health.Checks{
//		"redis": redis.Healthcheck(client),
//	}, health.WithTimeout(3*time.Second))
//	if err := resp.Err(); err != nil {
//		return err
//	}
//
// Every probe shares one timeout. Failed probes are logged at warn level and
// reported in the Response; Err joins them under ErrCheckFailed.
package health
