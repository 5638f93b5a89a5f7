package router

import (
	"github.com/suyu0925/coordx/app"
	"github.com/suyu0925/coordx/system/coordinate"

	"github.com/gofiber/fiber/v2"
)

// Register 负责集中注册所有 HTTP 路由，只做分组与路由绑定
func Register(a *app.App, f *fiber.App) {
	api := f.Group("/api")

	// 注册坐标组件路由（转换、识别、格式化）
	coordinate.RegisterRoutes(a.CoordinateModule, api)
}
