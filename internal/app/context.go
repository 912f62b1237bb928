package app

import "context"

type contextKey struct{}

// WithContext attaches a to ctx so commands run by tests reuse it instead
// of opening the configured database
func WithContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the App attached by WithContext
func FromContext(ctx context.Context) (*App, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(contextKey{}).(*App)
	return a, ok && a != nil
}
