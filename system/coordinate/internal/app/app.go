package app

import (
	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/pkg/coord"
)

// App 坐标组件应用层
type App struct {
	fractionDigits int
	log            *common.Logger
}

// NewApp 创建坐标组件应用层实例，fractionDigits 为格式化时的默认小数位数
func NewApp(fractionDigits int, log *common.Logger) *App {
	return &App{
		fractionDigits: fractionDigits,
		log:            log.Named("CoordinateApp"),
	}
}

// Convert 按坐标系名称转换坐标
func (a *App) Convert(from, to string, c coord.Coordinate) (coord.Typed, error) {
	src, err := coord.ParseSystem(from)
	if err != nil {
		return nil, err
	}
	dst, err := coord.ParseSystem(to)
	if err != nil {
		return nil, err
	}

	typed, err := coord.NewTyped(src, c)
	if err != nil {
		return nil, err
	}
	out, err := coord.Convert(typed, dst)
	if err != nil {
		return nil, err
	}

	a.log.Debug("坐标转换完成",
		common.String("from", src.String()),
		common.String("to", dst.String()),
		common.Bool("inChina", coord.InChina(c)),
	)
	return out, nil
}

// Parse 识别文本中的坐标
func (a *App) Parse(text string) (coord.Coordinate, coord.Notation, error) {
	c, n, err := coord.ParseNotation(text)
	if err != nil {
		a.log.Debug("坐标文本无法识别", common.String("input", text), common.ErrorField(err))
		return coord.Coordinate{}, n, err
	}
	return c, n, nil
}

// Format 输出 "lat,lng" 文本，digits 为空时使用默认小数位数
func (a *App) Format(c coord.Coordinate, digits *int) string {
	n := a.fractionDigits
	if digits != nil {
		n = *digits
	}
	return coord.Format(c, coord.WithFractionDigits(n))
}

// FractionDigits 默认小数位数
func (a *App) FractionDigits() int {
	return a.fractionDigits
}
