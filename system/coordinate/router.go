package coordinate

import (
	controller "github.com/suyu0925/coordx/system/coordinate/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册坐标组件的所有 HTTP 路由
func RegisterRoutes(m *Module, api fiber.Router) {
	coordinateController := controller.NewCoordinateController(m.internalApp, m.log)
	coordinateController.RegisterRoutes(api)
}
