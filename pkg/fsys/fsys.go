package fsys

import (
	"context"
	"path"
	"slices"
	"strings"
)

// FS is the minimal filesystem capability needed to manage resource files.
type FS interface {
	// ReadFile returns the full content of the named document.
	ReadFile(ctx context.Context, name string) ([]byte, error)

	// WriteFile replaces the named document, creating parent directories as needed.
	WriteFile(ctx context.Context, name string, data []byte) error

	// ReadDir returns the names of the entries directly inside dir,
	// both files and subdirectories.
	ReadDir(ctx context.Context, dir string) ([]string, error)
}

// Clean normalizes a slash-separated path relative to the backend root.
// "./i18n/", "/i18n" and "i18n" all become "i18n"; the root itself is ".".
func Clean(name string) string {
	p := path.Clean("/" + strings.TrimSpace(name))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}

// children collects the distinct first path segments of names below dir.
// names must already be cleaned.
func children(names []string, dir string) []string {
	prefix := ""
	if dir != "." {
		prefix = dir + "/"
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, name := range names {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok || rest == "" {
			continue
		}
		child, _, _ := strings.Cut(rest, "/")
		if _, dup := seen[child]; dup {
			continue
		}
		seen[child] = struct{}{}
		out = append(out, child)
	}

	slices.Sort(out)
	return out
}
