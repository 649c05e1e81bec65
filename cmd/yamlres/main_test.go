package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/yamlres/pkg/ast"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// workspace creates a root directory holding files and returns it.
func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	base := []string{
		"--env-file", filepath.Join(dir, ".env.none"),
		"--backend", "os",
		"--root", dir,
		"--pattern", "./i18n/{language}.yml",
	}

	var out, errOut bytes.Buffer
	// Flags given by the test come last so they override the defaults.
	argv := append([]string{args[0]}, append(base, args[1:]...)...)
	code := run(context.Background(), argv, streams{
		in:  strings.NewReader(stdin),
		out: &out,
		err: &errOut,
	})
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

var sample = map[string]string{
	"i18n/en.yml":     "greeting:\n  formal: Good day\nfarewell: Bye\n",
	"i18n/de.yml":     "greeting:\n  formal: Guten Tag\n",
	"i18n/readme.txt": "docs\n",
}

func TestLanguagesCommand(t *testing.T) {
	t.Parallel()

	dir := workspace(t, map[string]string{
		"i18n/en.yml":     "a: Hello\n",
		"i18n/de.yaml":    "a: Hallo\n",
		"i18n/readme.txt": "docs\n",
	})

	res := execute(t, dir, "", "languages", "--sort")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "de\nen\n", res.stdout)
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	dir := workspace(t, sample)

	res := execute(t, dir, "", "export", "--language", "en,de", "--compact")
	require.Equal(t, 0, res.code, res.stderr)

	var resources []ast.Resource
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resources))
	require.Len(t, resources, 2)
	assert.Equal(t, []string{"greeting.formal", "farewell"}, resources[0].IDs())
	assert.Equal(t, []string{"greeting.formal"}, resources[1].IDs())
	assert.Contains(t, res.stderr, `"msg":"resources exported"`)
	assert.Contains(t, res.stderr, `"operation":"export"`)
}

func TestImportCommand(t *testing.T) {
	t.Parallel()

	dir := workspace(t, map[string]string{"i18n/en.yml": "a: Hello\n"})
	input := `[{"languageTag":"fr","body":[
		{"id":"greeting.formal","pattern":{"elements":[{"value":"Bonjour"}]}},
		{"id":"farewell","pattern":{"elements":[{"value":"Au revoir"}]}}
	]}]`

	res := execute(t, dir, input, "import")
	require.Equal(t, 0, res.code, res.stderr)

	data, err := os.ReadFile(filepath.Join(dir, "i18n", "fr.yml"))
	require.NoError(t, err)
	assert.Equal(t, "greeting:\n  formal: Bonjour\nfarewell: Au revoir\n", string(data))

	en, err := os.ReadFile(filepath.Join(dir, "i18n", "en.yml"))
	require.NoError(t, err)
	assert.Equal(t, "a: Hello\n", string(en))

	res = execute(t, dir, "", "languages", "--sort")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "en\nfr\n", res.stdout)
}

func TestImportCommandRejectsBadInput(t *testing.T) {
	t.Parallel()

	dir := workspace(t, nil)

	res := execute(t, dir, `[{"body":[]}]`, "import")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "no languageTag")

	res = execute(t, dir, `{"languageTag":"en"}`, "import")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "decoding resources")
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"i18n/en.yml": "greeting:\n  formal: Good day\nfarewell: Bye\n",
		"i18n/de.yml": "greeting:\n  formal: Guten Tag\n",
		"i18n/fr.yml": "greeting:\n  formal: Bonjour\nfarewell: Au revoir\n",
	}

	t.Run("reports missing ids", func(t *testing.T) {
		t.Parallel()
		res := execute(t, workspace(t, files), "", "check")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "reference: en\nde: 1 missing\n  - farewell\nfr: complete\n", res.stdout)
		assert.Contains(t, res.stderr, `"msg":"language is missing messages"`)
	})

	t.Run("strict fails on missing ids", func(t *testing.T) {
		t.Parallel()
		res := execute(t, workspace(t, files), "", "check", "--strict")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "1 of 2 languages are missing messages")
	})

	t.Run("reference must be discovered", func(t *testing.T) {
		t.Parallel()
		res := execute(t, workspace(t, files), "", "check", "--reference", "es")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "reference language not found")
	})

	t.Run("malformed document fails", func(t *testing.T) {
		t.Parallel()
		broken := map[string]string{
			"i18n/en.yml": "a: Hello\n",
			"i18n/de.yml": "a: [broken\n",
		}
		res := execute(t, workspace(t, broken), "", "check")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "malformed YAML")
	})

	t.Run("warns about non bcp47 stems", func(t *testing.T) {
		t.Parallel()
		odd := map[string]string{
			"i18n/en.yml":         "a: Hello\n",
			"i18n/not_a_tag!.yml": "a: Hi\n",
		}
		res := execute(t, workspace(t, odd), "", "check")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stderr, "not a valid BCP 47 tag")
	})
}

func TestConfigErrors(t *testing.T) {
	t.Parallel()

	dir := workspace(t, nil)

	t.Run("pattern without placeholder", func(t *testing.T) {
		t.Parallel()
		res := execute(t, dir, "", "languages", "--pattern", "./i18n/en.yml")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "placeholder")
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Parallel()
		res := execute(t, dir, "", "languages", "--backend", "ftp")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, `unknown backend "ftp"`)
	})

	t.Run("missing root directory", func(t *testing.T) {
		t.Parallel()
		res := execute(t, dir, "", "languages", "--root", filepath.Join(dir, "absent"))
		assert.Equal(t, 1, res.code)
	})
}

func TestHelpWithoutConfiguration(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"help", "languages"},
		{"languages", "--help"},
		{"completion", "bash"},
	} {
		var out, errOut bytes.Buffer
		code := run(context.Background(), args, streams{in: strings.NewReader(""), out: &out, err: &errOut})
		require.Equal(t, 0, code, "%v: %s", args, errOut.String())
		assert.NotEmpty(t, out.String(), args)
	}

	var out bytes.Buffer
	run(context.Background(), []string{"help", "languages"}, streams{in: strings.NewReader(""), out: &out, err: &bytes.Buffer{}})
	assert.Contains(t, out.String(), "List the languages that have a document")
}

func TestCompareCoverage(t *testing.T) {
	t.Parallel()

	resources := []ast.Resource{
		{LanguageTag: "de", Body: []ast.Message{ast.NewMessage("a", "A")}},
		{LanguageTag: "en", Body: []ast.Message{ast.NewMessage("a", "A"), ast.NewMessage("b", "B")}},
		{LanguageTag: "fr"},
	}

	report := compareCoverage(resources, "en")
	assert.Equal(t, []coverage{
		{Language: "de", Missing: []string{"b"}},
		{Language: "fr", Missing: []string{"a", "b"}},
	}, report)
}
