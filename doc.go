// Package yamlres adapts YAML translation files to a translation host.
//
// Each language lives in its own YAML document, located through a path
// pattern such as "./i18n/{language}.yml". Nested keys are exposed to the
// host as flat, dot-separated message ids and written back as nested YAML.
//
// # Usage
//
//	store, err := fsys.NewOS(".")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	plugin, err := yamlres.New(yamlres.Settings{PathPattern: "./i18n/{language}.yml"}, store,
//		yamlres.WithLogger(logger.New()),
//	)
//	if err != nil {
//		return err // invalid pattern, reported before any I/O
//	}
//
//	langs, err := plugin.Languages(ctx)
//	resources, err := plugin.ReadResources(ctx, langs)
//	// edit resources ...
//	err = plugin.WriteResources(ctx, resources)
//
// # Host Contract
//
// Plugin implements Host. Hosts that expect the configuration-style entry
// point can call Config, which discovers the languages once and returns them
// together with the bound read and write operations.
//
// # Semantics
//
//   - A key missing from a language's document is missing from its Resource.
//   - Only the first element of a message pattern is written.
//   - Writing a Resource replaces that language's document and nothing else.
//   - Batches are not transactional: when a write fails, earlier languages
//     stay written.
//   - Both "de.yml" and "de.yaml" are reported as "de"; only the extension in
//     the pattern is read and written.
//
// The Plugin holds no mutable state and is safe for concurrent use as long as
// the filesystem backend is.
package yamlres
