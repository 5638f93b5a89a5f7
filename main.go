package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suyu0925/coordx/app"
	"github.com/suyu0925/coordx/app/config"
	"github.com/suyu0925/coordx/app/fiber"
	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/router"
)

func main() {
	env, filename := getBaseInfo()

	cfg, err := config.LoadConfig(filename)
	if err != nil {
		panic(fmt.Sprintf("加载配置失败,因为：%v", err))
	}
	if cfg.Env == "" {
		cfg.Env = env
	}

	logger, err := common.NewLogger(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("初始化日志失败,因为：%v", err))
	}
	common.SetLogger(logger)
	common.ErrorDebugMode = cfg.Errors.DebugMode
	defer logger.Sync()

	// 创建应用组合根
	appRoot := app.NewApp(cfg, logger)

	// 创建 Fiber 服务并注册路由
	server := fiber.NewServer(cfg.AppName, cfg.Server, logger)
	router.Register(appRoot, server.GetApp())

	errCh := server.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP 服务异常退出", common.ErrorField(err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("收到退出信号", common.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("关闭 HTTP 服务失败", common.ErrorField(err))
	}
}

func getBaseInfo() (string, string) {
	// 定义命令行参数
	env := flag.String("env", "dev", "环境配置 (dev, prod, test等)")
	configFile := flag.String("config", "", "配置文件路径，默认为 ./resources/{env}.yaml")

	// 解析命令行参数
	flag.Parse()

	// 如果没有指定配置文件路径，则使用默认路径
	var filename string
	if *configFile == "" {
		getwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Sprintf("获取当前文件位置失败,因为：%v", err))
		}
		filename = getwd + "/resources/" + *env + ".yaml"
	} else {
		filename = *configFile
	}
	return *env, filename
}
