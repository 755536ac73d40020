package utils

import (
	"context"

	"github.com/linskybing/catalyst/pkg/types"
)

const SystemActor = "system"

type requestMetaKey struct{}

func WithRequestMeta(ctx context.Context, meta types.RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFrom returns the metadata attached by the request middleware,
// or a system actor for background work.
func RequestMetaFrom(ctx context.Context) types.RequestMeta {
	if ctx != nil {
		if meta, ok := ctx.Value(requestMetaKey{}).(types.RequestMeta); ok {
			return meta
		}
	}
	return types.RequestMeta{Actor: SystemActor}
}

func WithActor(ctx context.Context, actor string) context.Context {
	meta := RequestMetaFrom(ctx)
	meta.Actor = actor
	return WithRequestMeta(ctx, meta)
}
