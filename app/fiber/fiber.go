package fiber

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"

	"github.com/suyu0925/coordx/app/config"
	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/pkg/core/fiber_handle"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server 代表Fiber Web服务器
type Server struct {
	app    *fiber.App
	config config.ServerConfig
	logger *common.Logger
}

// NewServer 创建并配置一个新的Fiber服务器
func NewServer(appName string, cfg config.ServerConfig, logger *common.Logger) *Server {
	logger = logger.Named("FiberServer")

	fiberApp := fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          fiber_handle.ErrHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})

	// 添加中间件
	fiberApp.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Error("请求处理崩溃", common.String("path", c.Path()), common.Any("panic", e))
		},
	}))
	fiberApp.Use(fiber_handle.NewRequestID())
	fiberApp.Use(fiber_handle.NewApiLogger(logger))
	fiberApp.Use(fiber_handle.Cors(cfg.AllowOrigins))
	fiberApp.Use(fiber_handle.HealthCheck(fiber_handle.HealthCheckConfig{Path: "/health"}))

	return &Server{
		app:    fiberApp,
		config: cfg,
		logger: logger,
	}
}

// Start 启动Fiber服务器，监听失败时通过返回的通道报告
func (s *Server) Start() <-chan error {
	s.logger.Info("启动Fiber API服务器", common.String("地址", s.config.ListenAddr))
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.config.ListenAddr)
	}()
	return errCh
}

// Stop 停止Fiber服务器
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("关闭Fiber API服务器")
	return s.app.ShutdownWithContext(ctx)
}

// GetApp 返回底层Fiber应用实例
func (s *Server) GetApp() *fiber.App {
	return s.app
}
