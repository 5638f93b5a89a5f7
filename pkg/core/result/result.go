package result

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suyu0925/coordx/pkg/common"
)

func OK(c *fiber.Ctx, v interface{}) error {
	return c.Status(200).JSON(fiber.Map{"status": 200, "data": v})
}

// BadRequest 参数错误，交给 ErrHandler 输出 400
func BadRequest(message string, err error) error {
	return common.NewValidationError(message, err)
}

func Once(c *fiber.Ctx, v interface{}, err error) error {
	if err != nil {
		return err
	}
	return OK(c, v)
}
