package context_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/green-footprint/model"
	utilsContext "github.com/muhammadheryan/green-footprint/utils/context"
)

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   uint64
		wantOK bool
	}{
		{
			name:   "no identity",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "nil identity",
			ctx:    utilsContext.WithIdentity(context.Background(), nil),
			wantOK: false,
		},
		{
			name:   "identity present",
			ctx:    utilsContext.WithIdentity(context.Background(), &model.TokenPayload{UserID: 42, Email: "a@b.co"}),
			want:   42,
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := utilsContext.GetUserID(tt.ctx)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("GetUserID() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
