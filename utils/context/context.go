package context

import (
	"context"

	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
)

// WithIdentity returns a copy of ctx carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity *model.TokenPayload) context.Context {
	return context.WithValue(ctx, constant.IdentityKey, identity)
}

func GetIdentity(ctx context.Context) (*model.TokenPayload, bool) {
	v := ctx.Value(constant.IdentityKey)
	if v == nil {
		return nil, false
	}
	identity, ok := v.(*model.TokenPayload)
	return identity, ok && identity != nil
}

func GetUserID(ctx context.Context) (uint64, bool) {
	identity, ok := GetIdentity(ctx)
	if !ok {
		return 0, false
	}
	return identity.UserID, true
}
