package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/pkg/coord"
	"github.com/suyu0925/coordx/pkg/core/result"
	"github.com/suyu0925/coordx/system/coordinate/api/dto"
	internalapp "github.com/suyu0925/coordx/system/coordinate/internal/app"
	"github.com/suyu0925/coordx/utils"
)

// CoordinateController 坐标转换、识别与格式化接口
type CoordinateController struct {
	app *internalapp.App
	log *common.Logger
}

// NewCoordinateController 创建坐标控制器
func NewCoordinateController(app *internalapp.App, log *common.Logger) *CoordinateController {
	return &CoordinateController{
		app: app,
		log: log.Named("CoordinateController"),
	}
}

// RegisterRoutes 注册路由
func (c *CoordinateController) RegisterRoutes(api fiber.Router) {
	group := api.Group("/coordinates")
	group.Post("/convert", c.Convert)
	group.Post("/parse", c.Parse)
	group.Post("/format", c.Format)
}

// Convert 坐标系转换
func (c *CoordinateController) Convert(ctx *fiber.Ctx) error {
	var req dto.ConvertRequest
	if err := c.bind(ctx, &req); err != nil {
		return err
	}

	out, err := c.app.Convert(req.From, req.To, coord.Coordinate{Lng: *req.Lng, Lat: *req.Lat})
	if err != nil {
		return err
	}

	p := out.Point()
	return result.OK(ctx, &dto.CoordinateDTO{
		System: out.System().String(),
		Lng:    p.Lng,
		Lat:    p.Lat,
	})
}

// Parse 识别坐标文本
func (c *CoordinateController) Parse(ctx *fiber.Ctx) error {
	var req dto.ParseRequest
	if err := c.bind(ctx, &req); err != nil {
		return err
	}

	p, n, err := c.app.Parse(req.Text)
	return result.Once(ctx, &dto.ParseResultDTO{
		Notation: n.String(),
		Lng:      p.Lng,
		Lat:      p.Lat,
	}, err)
}

// Format 输出 "lat,lng" 文本
func (c *CoordinateController) Format(ctx *fiber.Ctx) error {
	var req dto.FormatRequest
	if err := c.bind(ctx, &req); err != nil {
		return err
	}

	text := c.app.Format(coord.Coordinate{Lng: *req.Lng, Lat: *req.Lat}, req.FractionDigits)
	return result.OK(ctx, &dto.FormatResultDTO{Text: text})
}

func (c *CoordinateController) bind(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		c.log.Debug("解析请求参数失败", common.ErrorField(err))
		return result.BadRequest("解析请求参数失败", err)
	}
	return utils.CheckStruct(req)
}
