package resource_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/yamlres/pkg/ast"
	"github.com/dmitrymomot/yamlres/pkg/document"
	"github.com/dmitrymomot/yamlres/pkg/fsys"
	"github.com/dmitrymomot/yamlres/pkg/pathpattern"
	"github.com/dmitrymomot/yamlres/pkg/resource"
)

var pattern = pathpattern.MustParse("./i18n/{language}.yml")

func TestToResource(t *testing.T) {
	t.Parallel()

	flat := document.NewFlatMap()
	flat.Set("greeting.formal", "Good day")
	flat.Set("a", "  untrimmed {name} \\n ")

	res := resource.ToResource(flat, "en")
	require.Equal(t, ast.LanguageTag("en"), res.LanguageTag)
	require.Equal(t, []ast.Message{
		ast.NewMessage("greeting.formal", "Good day"),
		ast.NewMessage("a", "  untrimmed {name} \\n "),
	}, res.Body)

	empty := resource.ToResource(nil, "de")
	require.Empty(t, empty.Body)
}

func TestToFlat(t *testing.T) {
	t.Parallel()

	t.Run("uses only the first pattern element", func(t *testing.T) {
		t.Parallel()
		res := ast.Resource{LanguageTag: "en", Body: []ast.Message{{
			ID:      "a",
			Pattern: ast.Pattern{Elements: []ast.Text{{Value: "A"}, {Value: "B"}}},
		}}}

		flat := resource.ToFlat(res)
		require.Equal(t, map[string]string{"a": "A"}, flat.Map())
	})

	t.Run("skips messages without elements", func(t *testing.T) {
		t.Parallel()
		res := ast.Resource{Body: []ast.Message{{ID: "empty"}, ast.NewMessage("b", "")}}

		flat := resource.ToFlat(res)
		require.False(t, flat.Has("empty"))
		v, ok := flat.Get("b")
		require.True(t, ok)
		require.Empty(t, v)
	})

	t.Run("last duplicate wins in first position", func(t *testing.T) {
		t.Parallel()
		res := ast.Resource{Body: []ast.Message{
			ast.NewMessage("a", "first"),
			ast.NewMessage("b", "B"),
			ast.NewMessage("a", "second"),
		}}

		flat := resource.ToFlat(res)
		require.Equal(t, []string{"a", "b"}, flat.Keys())
		v, _ := flat.Get("a")
		require.Equal(t, "second", v)
	})
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("missing keys stay absent", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(map[string]string{
			"i18n/en.yml": "a: Hello\nb: World\n",
			"i18n/de.yml": "a: Hallo\n",
		})

		resources, err := resource.ReadAll(ctx, store, pattern, []string{"en", "de"})
		require.NoError(t, err)
		require.Len(t, resources, 2)

		de := resources[1]
		require.Equal(t, ast.LanguageTag("de"), de.LanguageTag)
		require.Equal(t, []ast.Message{ast.NewMessage("a", "Hallo")}, de.Body)
		_, ok := de.Lookup("b")
		require.False(t, ok)
	})

	t.Run("nested keys become dotted ids", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(map[string]string{"i18n/en.yml": "greeting:\n  formal: Good day\n"})

		resources, err := resource.ReadAll(ctx, store, pattern, []string{"en"})
		require.NoError(t, err)
		require.Equal(t, []string{"greeting.formal"}, resources[0].IDs())
		value, _ := resources[0].Body[0].Text()
		require.Equal(t, "Good day", value)
	})

	t.Run("empty document yields an empty resource", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(map[string]string{"i18n/en.yml": ""})

		resources, err := resource.ReadAll(ctx, store, pattern, []string{"en"})
		require.NoError(t, err)
		require.Empty(t, resources[0].Body)
	})

	t.Run("missing document is an error", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(map[string]string{"i18n/en.yml": "a: Hello\n"})

		_, err := resource.ReadAll(ctx, store, pattern, []string{"en", "fr"})
		require.ErrorIs(t, err, fsys.ErrNotFound)
		require.Contains(t, err.Error(), "./i18n/fr.yml")
	})

	t.Run("malformed document is an error, not an empty resource", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(map[string]string{"i18n/en.yml": "a: [broken\n"})

		resources, err := resource.ReadAll(ctx, store, pattern, []string{"en"})
		require.ErrorIs(t, err, document.ErrParse)
		require.Nil(t, resources)
	})

	t.Run("io errors propagate unchanged", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("disk on fire")
		reader := readerFunc(func(context.Context, string) ([]byte, error) { return nil, boom })

		_, err := resource.ReadAll(ctx, reader, pattern, []string{"en"})
		require.ErrorIs(t, err, boom)
	})

	t.Run("empty language", func(t *testing.T) {
		t.Parallel()
		_, err := resource.ReadAll(ctx, fsys.NewMemory(nil), pattern, []string{""})
		require.ErrorIs(t, err, pathpattern.ErrEmptyLanguage)
	})
}

func TestWriteAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rebuilds nested documents", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(nil)

		err := resource.WriteAll(ctx, store, pattern, []ast.Resource{{
			LanguageTag: "en",
			Body: []ast.Message{
				ast.NewMessage("greeting.formal", "Good day"),
				ast.NewMessage("greeting.casual", "Hi"),
				ast.NewMessage("a", "Hello"),
			},
		}})
		require.NoError(t, err)
		require.Equal(t, "greeting:\n  formal: Good day\n  casual: Hi\na: Hello\n", store.Files()["i18n/en.yml"])
	})

	t.Run("writing one language leaves others untouched", func(t *testing.T) {
		t.Parallel()
		const en = "a: Hello\nb: World\n"
		store := fsys.NewMemory(map[string]string{
			"i18n/en.yml": en,
			"i18n/de.yml": "a: Hallo\n",
		})

		err := resource.WriteAll(ctx, store, pattern, []ast.Resource{{
			LanguageTag: "de",
			Body:        []ast.Message{ast.NewMessage("a", "Servus"), ast.NewMessage("b", "Welt")},
		}})
		require.NoError(t, err)

		files := store.Files()
		require.Equal(t, en, files["i18n/en.yml"])
		require.Equal(t, "a: Servus\nb: Welt\n", files["i18n/de.yml"])
	})

	t.Run("empty resource writes an empty mapping", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(nil)

		require.NoError(t, resource.WriteAll(ctx, store, pattern, []ast.Resource{{LanguageTag: "xx"}}))
		require.Equal(t, "{}\n", store.Files()["i18n/xx.yml"])
	})

	t.Run("conflicting ids fail before anything is written", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(map[string]string{"i18n/en.yml": "a: Hello\n"})

		err := resource.WriteAll(ctx, store, pattern, []ast.Resource{{
			LanguageTag: "en",
			Body:        []ast.Message{ast.NewMessage("a", "x"), ast.NewMessage("a.b", "y")},
		}})
		require.ErrorIs(t, err, document.ErrKeyConflict)
		require.Equal(t, "a: Hello\n", store.Files()["i18n/en.yml"])
	})

	t.Run("partial batch on failure", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewMemory(nil)

		err := resource.WriteAll(ctx, store, pattern, []ast.Resource{
			{LanguageTag: "en", Body: []ast.Message{ast.NewMessage("a", "Hello")}},
			{LanguageTag: "de", Body: []ast.Message{ast.NewMessage("a", "x"), ast.NewMessage("a.b", "y")}},
			{LanguageTag: "fr", Body: []ast.Message{ast.NewMessage("a", "Salut")}},
		})
		require.Error(t, err)

		files := store.Files()
		assert.Contains(t, files, "i18n/en.yml")
		assert.NotContains(t, files, "i18n/de.yml")
		assert.NotContains(t, files, "i18n/fr.yml")
	})

	t.Run("read-only backend", func(t *testing.T) {
		t.Parallel()
		store := fsys.NewIOFS(nil)

		err := resource.WriteAll(ctx, store, pattern, []ast.Resource{{LanguageTag: "en"}})
		require.ErrorIs(t, err, fsys.ErrReadOnly)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := fsys.NewMemory(map[string]string{
		"i18n/en.yml": "nav:\n  home: Home\n  about: About us\ncount: 5\nflag: \"true\"\nmultiline: |\n  line one\n  line two\n",
	})

	first, err := resource.ReadAll(ctx, store, pattern, []string{"en"})
	require.NoError(t, err)

	require.NoError(t, resource.WriteAll(ctx, store, pattern, first))
	second, err := resource.ReadAll(ctx, store, pattern, []string{"en"})
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.NoError(t, resource.WriteAll(ctx, store, pattern, second))
	third, err := resource.ReadAll(ctx, store, pattern, []string{"en"})
	require.NoError(t, err)
	require.Equal(t, second, third)

	require.Equal(t, []string{"nav.home", "nav.about", "count", "flag", "multiline"}, first[0].IDs())
	multiline, _ := first[0].Lookup("multiline")
	text, _ := multiline.Text()
	require.Equal(t, "line one\nline two\n", text)
}

func TestRoundTripVerbatimText(t *testing.T) {
	t.Parallel()

	values := []string{
		"\n",
		"\na",
		"\n\n",
		"\n\na\n\n",
		" leading space\nsecond line",
		"\tindented\nsecond line",
		"line one\nline two",
		"trailing newline\n",
		"  untrimmed {name} ",
		"",
		"true",
		"#not a comment",
	}

	for _, value := range values {
		t.Run(fmt.Sprintf("%q", value), func(t *testing.T) {
			t.Parallel()
			res := ast.Resource{LanguageTag: "en", Body: []ast.Message{ast.NewMessage("k", value)}}

			data, err := resource.Serialize(res)
			require.NoError(t, err)

			back, err := resource.Parse(data, "en")
			require.NoError(t, err)
			require.Equal(t, res, back, "document:\n%s", data)
		})
	}
}

func TestWriteRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	store := fsys.NewMemory(map[string]string{"i18n/en.yml": "k: ok\n"})
	err := resource.Write(context.Background(), store, pattern, ast.Resource{
		LanguageTag: "en",
		Body:        []ast.Message{ast.NewMessage("k", "bad\xffutf8")},
	})
	require.ErrorIs(t, err, document.ErrInvalidUTF8)
	require.Equal(t, "k: ok\n", store.Files()["i18n/en.yml"])
}

type readerFunc func(ctx context.Context, name string) ([]byte, error)

func (f readerFunc) ReadFile(ctx context.Context, name string) ([]byte, error) {
	return f(ctx, name)
}
