package yamlres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/yamlres/pkg/ast"
	"github.com/dmitrymomot/yamlres/pkg/fsys"
	"github.com/dmitrymomot/yamlres/pkg/logger"
	"github.com/dmitrymomot/yamlres/pkg/pathpattern"
	"github.com/dmitrymomot/yamlres/pkg/resource"
)

// PluginID identifies the adapter to the host.
const PluginID = "yamlres"

// Settings is the plugin configuration supplied by the host.
type Settings struct {
	// PathPattern locates the document of each language and must contain
	// the {language} placeholder exactly once, e.g. "./i18n/{language}.yml".
	PathPattern string `env:"YAMLRES_PATH_PATTERN"`
}

// Host is the contract a translation host calls.
type Host interface {
	Languages(ctx context.Context) ([]string, error)
	ReadResources(ctx context.Context, languages []string) ([]ast.Resource, error)
	WriteResources(ctx context.Context, resources []ast.Resource) error
}

// HostConfig is what Config hands to the host: the discovered languages and
// the operations bound to this plugin.
type HostConfig struct {
	ReadResources  func(ctx context.Context, languages []string) ([]ast.Resource, error)
	WriteResources func(ctx context.Context, resources []ast.Resource) error
	Languages      []string
}

// Plugin reads and writes YAML resources through a filesystem capability.
type Plugin struct {
	fs      fsys.FS
	logger  *slog.Logger
	pattern pathpattern.Pattern
}

var _ Host = (*Plugin)(nil)

// New validates settings and creates a Plugin. An invalid path pattern is
// reported here, before any filesystem access.
func New(settings Settings, store fsys.FS, opts ...Option) (*Plugin, error) {
	pattern, err := pathpattern.Parse(settings.PathPattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidSettings, err)
	}
	if store == nil {
		return nil, ErrNilFS
	}

	p := &Plugin{
		fs:      store,
		logger:  logger.NewNope(),
		pattern: pattern,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// ID returns PluginID.
func (p *Plugin) ID() string {
	return PluginID
}

// Pattern returns the parsed path pattern.
func (p *Plugin) Pattern() pathpattern.Pattern {
	return p.pattern
}

// Languages lists the languages that have a document next to the pattern.
func (p *Plugin) Languages(ctx context.Context) ([]string, error) {
	langs, err := pathpattern.Discover(ctx, p.fs, p.pattern)
	if err != nil {
		return nil, err
	}

	p.logger.DebugContext(ctx, "languages discovered",
		slog.String("dir", p.pattern.Dir()),
		slog.Any("languages", langs),
	)
	return langs, nil
}

// ReadResources builds one Resource per language, in the given order.
func (p *Plugin) ReadResources(ctx context.Context, languages []string) ([]ast.Resource, error) {
	resources, err := resource.ReadAll(ctx, p.fs, p.pattern, languages)
	if err != nil {
		return nil, err
	}

	for _, res := range resources {
		p.logger.DebugContext(ctx, "resource read",
			slog.String("language", res.LanguageTag.String()),
			slog.String("path", p.pattern.Resolve(res.LanguageTag.String())),
			slog.Int("messages", len(res.Body)),
		)
	}
	return resources, nil
}

// WriteResources replaces the document of every given resource, in order.
// The first failure stops the batch; earlier documents stay written.
func (p *Plugin) WriteResources(ctx context.Context, resources []ast.Resource) error {
	if err := resource.WriteAll(ctx, p.fs, p.pattern, resources); err != nil {
		return err
	}

	for _, res := range resources {
		p.logger.DebugContext(ctx, "resource written",
			slog.String("language", res.LanguageTag.String()),
			slog.String("path", p.pattern.Resolve(res.LanguageTag.String())),
			slog.Int("messages", len(res.Body)),
		)
	}
	return nil
}

// Config discovers the languages and returns them with the bound operations.
func (p *Plugin) Config(ctx context.Context) (*HostConfig, error) {
	langs, err := p.Languages(ctx)
	if err != nil {
		return nil, err
	}

	return &HostConfig{
		Languages:      langs,
		ReadResources:  p.ReadResources,
		WriteResources: p.WriteResources,
	}, nil
}
