package fiber_handle

import "github.com/gofiber/fiber/v2"

type HealthCheckConfig struct {
	Path string
}

// HealthCheck 命中 Path 时直接返回，不进入后续处理链
func HealthCheck(config HealthCheckConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet && c.Path() == config.Path {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
		}
		return c.Next()
	}
}
