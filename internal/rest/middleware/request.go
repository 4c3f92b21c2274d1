package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/letybo/ordering/internal/types"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	c.Request = c.Request.WithContext(types.SetRequestID(c.Request.Context(), requestID))
	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}

// IdentityMiddleware copies the identity headers onto the request context.
// Requests without X-User-ID act as types.DefaultUserID.
func IdentityMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	if userID := c.GetHeader(types.HeaderUserID); userID != "" {
		ctx = types.SetUserID(ctx, userID)
	}
	if email := c.GetHeader(types.HeaderUserEmail); email != "" {
		ctx = types.SetUserEmail(ctx, email)
	}
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
