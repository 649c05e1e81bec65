package yamlres

import "log/slog"

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the logger used for debug events.
// If nil, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}
