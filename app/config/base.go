package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/suyu0925/coordx/pkg/common"
	"github.com/suyu0925/coordx/pkg/coord"
	"github.com/suyu0925/coordx/utils"
)

// Config 表示应用程序配置
type Config struct {
	AppName string           `yaml:"app-name" validate:"required"`
	Env     string           `yaml:"env" validate:"omitempty,oneof=dev test prod"`
	Server  ServerConfig     `yaml:"server"`
	Format  FormatConfig     `yaml:"format"`
	Log     common.LogConfig `yaml:"log"`
	Errors  ErrorsConfig     `yaml:"errors"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	ListenAddr   string        `yaml:"listen-addr" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read-timeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write-timeout" validate:"gte=0"`
	BodyLimit    int           `yaml:"body-limit" validate:"gte=0"` // 请求体上限（字节），0 使用 fiber 默认值
	AllowOrigins string        `yaml:"allow-origins"`               // 跨域允许的来源，逗号分隔
}

// FormatConfig 坐标格式化配置
type FormatConfig struct {
	// FractionDigits 默认保留的小数位数，0 表示不做舍入
	FractionDigits int `yaml:"fraction-digits" validate:"gte=0,lte=15"`
}

// ErrorsConfig 表示错误处理配置
type ErrorsConfig struct {
	DebugMode bool `yaml:"debug-mode"`
}

// Default 返回默认配置，配置文件中未出现的字段保持默认值
func Default() Config {
	return Config{
		AppName: "coordx",
		Env:     "dev",
		Server: ServerConfig{
			ListenAddr:   ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			AllowOrigins: "*",
		},
		Format: FormatConfig{FractionDigits: coord.DefaultFractionDigits},
		Log:    common.DefaultLogConfig(),
	}
}

// LoadConfig 从文件中加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig 解析 YAML 配置并校验
func ParseConfig(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := utils.CheckStruct(&cfg); err != nil {
		return nil, fmt.Errorf("校验配置失败: %w", err)
	}
	return &cfg, nil
}
