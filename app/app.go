package app

import (
	"github.com/suyu0925/coordx/app/config"
	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/system/coordinate"
)

// App 应用组合根，持有各业务组件模块
type App struct {
	CoordinateModule *coordinate.Module
}

// NewApp 按配置创建各组件模块
func NewApp(cfg *config.Config, logger *common.Logger) *App {
	return &App{
		CoordinateModule: coordinate.NewModule(cfg.Format.FractionDigits, logger),
	}
}
