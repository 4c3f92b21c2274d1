package testutil

import (
	"context"

	"github.com/letybo/ordering/internal/types"
)

const (
	DefaultTestUserID    = "user_test_1"
	DefaultTestUserEmail = "doctor@example.com"
)

func SetupContext() context.Context {
	return SetupContextForUser(DefaultTestUserID, DefaultTestUserEmail)
}

// SetupContextForUser carries the identity the identity middleware would set
func SetupContextForUser(userID, email string) context.Context {
	ctx := context.Background()
	ctx = types.SetUserID(ctx, userID)
	ctx = types.SetUserEmail(ctx, email)
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	return ctx
}
