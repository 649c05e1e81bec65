// Package pathpattern resolves per-language resource paths from a template
// such as "./i18n/{language}.yml" and discovers the languages present on disk.
package pathpattern

import (
	"context"
	"fmt"
	"strings"
)

// Placeholder marks where the language tag goes in a path pattern.
const Placeholder = "{language}"

// Extensions lists the file extensions recognized as resource documents.
var Extensions = []string{".yml", ".yaml"}

// Pattern is a validated path template with exactly one Placeholder.
type Pattern struct {
	raw    string
	prefix string
	suffix string
}

// Parse validates raw and returns the corresponding Pattern.
// It never touches the filesystem.
func Parse(raw string) (Pattern, error) {
	switch strings.Count(raw, Placeholder) {
	case 0:
		return Pattern{}, fmt.Errorf("%w: %q", ErrMissingPlaceholder, raw)
	case 1:
	default:
		return Pattern{}, fmt.Errorf("%w: %q", ErrMultiplePlaceholders, raw)
	}

	prefix, suffix, _ := strings.Cut(raw, Placeholder)
	return Pattern{raw: raw, prefix: prefix, suffix: suffix}, nil
}

// MustParse is like Parse but panics on an invalid pattern.
func MustParse(raw string) Pattern {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the raw pattern.
func (p Pattern) String() string {
	return p.raw
}

// Prefix returns everything before the placeholder.
func (p Pattern) Prefix() string {
	return p.prefix
}

// Suffix returns everything after the placeholder.
func (p Pattern) Suffix() string {
	return p.suffix
}

// Dir returns the directory that holds the resource files,
// i.e. the prefix up to and including its last "/".
// A prefix without any "/" refers to the current directory of the filesystem.
func (p Pattern) Dir() string {
	i := strings.LastIndexByte(p.prefix, '/')
	if i < 0 {
		return "."
	}
	return p.prefix[:i+1]
}

// NamePrefix returns the part of the prefix that belongs to the file name,
// e.g. "messages." for "./i18n/messages.{language}.yml".
func (p Pattern) NamePrefix() string {
	return p.prefix[strings.LastIndexByte(p.prefix, '/')+1:]
}

// Resolve returns the resource path for lang.
func (p Pattern) Resolve(lang string) string {
	return p.prefix + lang + p.suffix
}

// LanguageFromName derives a language tag from a directory entry name.
// The entry must start with namePrefix and end in one of Extensions.
func LanguageFromName(name, namePrefix string) (string, bool) {
	rest, ok := strings.CutPrefix(name, namePrefix)
	if !ok {
		return "", false
	}
	for _, ext := range Extensions {
		if lang, ok := strings.CutSuffix(rest, ext); ok && lang != "" {
			return lang, true
		}
	}
	return "", false
}

// DirReader lists the entry names of a directory.
type DirReader interface {
	ReadDir(ctx context.Context, dir string) ([]string, error)
}

// ReadDirFunc adapts a function to DirReader.
type ReadDirFunc func(ctx context.Context, dir string) ([]string, error)

// ReadDir calls f.
func (f ReadDirFunc) ReadDir(ctx context.Context, dir string) ([]string, error) {
	return f(ctx, dir)
}

// Discover lists p.Dir() and returns the language of every entry that looks
// like a resource file, in listing order. Unrelated entries are skipped.
//
// The same language is reported twice when both "de.yml" and "de.yaml" exist;
// only the extension used in the pattern is ever read or written.
func Discover(ctx context.Context, r DirReader, p Pattern) ([]string, error) {
	entries, err := r.ReadDir(ctx, p.Dir())
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", p.Dir(), err)
	}

	namePrefix := p.NamePrefix()
	languages := make([]string, 0, len(entries))
	for _, name := range entries {
		if lang, ok := LanguageFromName(name, namePrefix); ok {
			languages = append(languages, lang)
		}
	}

	return languages, nil
}
