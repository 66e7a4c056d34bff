package testutil

import (
	"context"

	"github.com/invoicesystem/invoicesystem/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	return ctx
}
