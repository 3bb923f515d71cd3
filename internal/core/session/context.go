package session

import "context"

type contextKey struct{}

// WithStore returns a copy of ctx carrying store.
func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, store)
}

// FromContext returns the store attached by WithStore. A missing store means
// the session middleware was not wired in front of the caller, so it panics.
func FromContext(ctx context.Context) *Store {
	store, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || store == nil {
		panic("session: no store in context")
	}
	return store
}

// Lookup is the non-panicking variant of FromContext.
func Lookup(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(contextKey{}).(*Store)
	return store, ok && store != nil
}
