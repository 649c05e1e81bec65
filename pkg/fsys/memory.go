package fsys

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Memory is an in-memory FS. The zero value is not usable; use NewMemory.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemory creates an in-memory backend seeded with files.
// Keys are paths, values are document contents.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: make(map[string][]byte, len(files))}
	for name, content := range files {
		m.files[Clean(name)] = []byte(content)
	}
	return m
}

// ReadFile returns a copy of the stored document.
func (m *Memory) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = Clean(name)
	m.mu.RLock()
	data, ok := m.files[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return slices.Clone(data), nil
}

// WriteFile stores a copy of data.
func (m *Memory) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name = Clean(name)
	m.mu.Lock()
	m.files[name] = slices.Clone(data)
	m.mu.Unlock()
	return nil
}

// ReadDir lists the entries below dir in lexical order.
// Directories exist implicitly as long as they contain a document.
func (m *Memory) ReadDir(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir = Clean(dir)
	m.mu.RLock()
	names := slices.Collect(maps.Keys(m.files))
	m.mu.RUnlock()

	entries := children(names, dir)
	if len(entries) == 0 && dir != "." {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, dir)
	}
	return entries, nil
}

// Files returns a snapshot of every stored document.
func (m *Memory) Files() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.files))
	for name, data := range m.files {
		out[name] = string(data)
	}
	return out
}
