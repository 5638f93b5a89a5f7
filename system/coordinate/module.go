package coordinate

import (
	"github.com/suyu0925/coordx/pkg/common"
	internalapp "github.com/suyu0925/coordx/system/coordinate/internal/app"
)

// Module 坐标组件模块
type Module struct {
	internalApp *internalapp.App
	log         *common.Logger
}

// NewModule 创建坐标组件模块，fractionDigits 为格式化接口的默认小数位数
func NewModule(fractionDigits int, log *common.Logger) *Module {
	log = log.Named("CoordinateModule")
	return &Module{
		internalApp: internalapp.NewApp(fractionDigits, log),
		log:         log,
	}
}
