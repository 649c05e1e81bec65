// Package resource converts between YAML translation documents and the
// message-list representation used by the translation host.
//
// Reading a language loads its document, flattens it and turns every entry
// into a single-text Message. Writing does the reverse and replaces the whole
// document. Keys missing from a document are missing from the Resource; they
// are never filled in with empty strings.
package resource

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/yamlres/pkg/ast"
	"github.com/dmitrymomot/yamlres/pkg/document"
	"github.com/dmitrymomot/yamlres/pkg/pathpattern"
)

// Reader loads raw documents.
type Reader interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// Writer persists raw documents.
type Writer interface {
	WriteFile(ctx context.Context, name string, data []byte) error
}

// ToResource builds the Resource of lang from a flat map.
// Values are copied verbatim and message order follows the map.
func ToResource(flat *document.FlatMap, lang ast.LanguageTag) ast.Resource {
	body := make([]ast.Message, 0, flat.Len())
	for id, value := range flat.All() {
		body = append(body, ast.NewMessage(id, value))
	}
	return ast.Resource{LanguageTag: lang, Body: body}
}

// ToFlat extracts the text of every message.
// Only the first pattern element is used; further elements are dropped.
// Messages without elements are skipped, and when an id repeats the last
// message wins.
func ToFlat(res ast.Resource) *document.FlatMap {
	flat := document.NewFlatMap()
	for _, msg := range res.Body {
		if value, ok := msg.Text(); ok {
			flat.Set(msg.ID, value)
		}
	}
	return flat
}

// Parse decodes a YAML document into the Resource of lang.
func Parse(data []byte, lang ast.LanguageTag) (ast.Resource, error) {
	doc, err := document.Decode(data)
	if err != nil {
		return ast.Resource{}, err
	}

	flat, err := document.Flatten(doc)
	if err != nil {
		return ast.Resource{}, err
	}

	return ToResource(flat, lang), nil
}

// Serialize renders a Resource as a YAML document.
func Serialize(res ast.Resource) ([]byte, error) {
	doc, err := document.Unflatten(ToFlat(res))
	if err != nil {
		return nil, err
	}
	return document.Encode(doc)
}

// Read loads and parses the document of a single language.
func Read(ctx context.Context, r Reader, p pathpattern.Pattern, lang ast.LanguageTag) (ast.Resource, error) {
	if lang == "" {
		return ast.Resource{}, pathpattern.ErrEmptyLanguage
	}

	name := p.Resolve(lang.String())
	data, err := r.ReadFile(ctx, name)
	if err != nil {
		return ast.Resource{}, fmt.Errorf("reading %s resource %q: %w", lang, name, err)
	}

	res, err := Parse(data, lang)
	if err != nil {
		return ast.Resource{}, fmt.Errorf("parsing %s resource %q: %w", lang, name, err)
	}

	return res, nil
}

// Write serializes res and replaces the document of its language.
func Write(ctx context.Context, w Writer, p pathpattern.Pattern, res ast.Resource) error {
	if res.LanguageTag == "" {
		return pathpattern.ErrEmptyLanguage
	}

	name := p.Resolve(res.LanguageTag.String())
	data, err := Serialize(res)
	if err != nil {
		return fmt.Errorf("serializing %s resource %q: %w", res.LanguageTag, name, err)
	}

	if err := w.WriteFile(ctx, name, data); err != nil {
		return fmt.Errorf("writing %s resource %q: %w", res.LanguageTag, name, err)
	}

	return nil
}

// ReadAll reads every language in order. The first failure aborts the batch.
func ReadAll(ctx context.Context, r Reader, p pathpattern.Pattern, languages []string) ([]ast.Resource, error) {
	resources := make([]ast.Resource, 0, len(languages))
	for _, lang := range languages {
		res, err := Read(ctx, r, p, ast.LanguageTag(lang))
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, nil
}

// WriteAll writes every resource in order and stops at the first failure.
// Documents written before the failure are not rolled back.
func WriteAll(ctx context.Context, w Writer, p pathpattern.Pattern, resources []ast.Resource) error {
	for _, res := range resources {
		if err := Write(ctx, w, p, res); err != nil {
			return err
		}
	}
	return nil
}
