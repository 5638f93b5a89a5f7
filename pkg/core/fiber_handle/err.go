package fiber_handle

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/suyu0925/coordx/pkg/common"
)

// ErrHandler 将错误转换为统一的 JSON 响应，HTTP 状态码与 body 中的 status 一致
func ErrHandler(ctx *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return ctx.Status(e.Code).JSON(fiber.Map{"status": e.Code, "message": e.Message})
	}

	appErr := common.ToAppError(err)
	code := appErr.StatusCode()

	log := common.GetLogger().With(
		common.String("path", ctx.Path()),
		common.Any(TraceKey, ctx.Locals(TraceKey)),
	).WithErr(appErr.Err)
	if code >= fiber.StatusInternalServerError {
		log.Error(appErr.Message, common.String("code", appErr.Code))
	} else {
		log.Debug(appErr.Message, common.String("code", appErr.Code))
	}

	return ctx.Status(code).JSON(appErr.Response())
}
