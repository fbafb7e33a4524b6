// Package ctxutil carries per-invocation values through context.Context.
// It has no internal dependencies so any layer may import it.
package ctxutil

import "context"

type actorKey struct{}

// WithActor returns a context recording who is performing the operation.
func WithActor(ctx context.Context, actor string) context.Context {
	if actor == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored in ctx, or "" if none is set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok {
		return v
	}
	return ""
}
