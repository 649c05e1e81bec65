// Package fsys provides the filesystem capability used to read, write and list
// translation documents.
//
// Every backend implements the three-method FS interface. Paths are slash
// separated and relative to the backend root; "./" and leading "/" are
// accepted and normalized, so the same path pattern works everywhere.
//
// # Backends
//
//   - NewOS confines all access to a directory via os.Root. Nothing depends on
//     the process working directory.
//   - NewMemory keeps documents in a map. It is safe for concurrent use.
//   - NewIOFS exposes any fs.FS (for example an embed.FS) read-only.
//   - NewS3 stores documents as objects in an S3-compatible bucket.
//   - NewRedis stores documents as string keys in Redis.
//
// # Errors
//
// A missing document is reported as ErrNotFound, which also matches
// fs.ErrNotExist. Backend errors are wrapped, never swallowed:
//
//	data, err := store.ReadFile(ctx, "i18n/en.yml")
//	if errors.Is(err, fsys.ErrNotFound) {
//		// no document for this language yet
//	}
//
// No backend retries failed operations.
package fsys
