package fiber_handle

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/suyu0925/coordx/pkg/common"
)

// NewApiLogger 记录每个请求的状态码、耗时与请求ID
func NewApiLogger(log *common.Logger) fiber.Handler {
	log = log.Named("API")

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			// 错误响应由 ErrHandler 写入，此时状态码尚未落地
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = common.ToAppError(err).StatusCode()
			}
		}

		log.Debug("请求处理完毕",
			common.Int("status", status),
			common.Duration("latency", time.Since(start).Round(time.Millisecond)),
			common.String("method", c.Method()),
			common.String("path", c.Path()),
			common.Any(TraceKey, c.Locals(TraceKey)),
		)
		return err
	}
}
