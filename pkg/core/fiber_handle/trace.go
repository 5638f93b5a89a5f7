package fiber_handle

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// TraceKey 请求ID在 Locals 与 context 中的键
	TraceKey = "traceId"
	// RequestIDHeader 透传请求ID的请求头
	RequestIDHeader = "X-Request-ID"
)

type traceKey struct{}

// NewRequestID 为每个请求分配请求ID，上游已带请求头时沿用
func NewRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(RequestIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Locals(TraceKey, traceID)
		c.SetUserContext(context.WithValue(c.UserContext(), traceKey{}, traceID))
		c.Set(RequestIDHeader, traceID)
		return c.Next()
	}
}

// TraceID 从 context 中取出请求ID
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}
