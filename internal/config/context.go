// internal/config/context.go
package config

import "context"

type ctxKey struct{}

// IntoContext returns a child context carrying cfg.
func IntoContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext extracts the config stored by IntoContext, falling back to
// defaults when none is present.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return NewDefault()
}
