package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel 日志级别
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// LogConfig 日志配置
type LogConfig struct {
	Level      LogLevel `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Filename   string   `yaml:"file"`        // 日志文件路径，为空则不写文件
	MaxSize    int      `yaml:"max-size"`    // 单个日志文件最大大小（MB）
	MaxBackups int      `yaml:"max-backups"` // 最大保留历史日志文件数
	MaxAge     int      `yaml:"max-age"`     // 日志文件保留天数
	Compress   bool     `yaml:"compress"`    // 是否压缩历史日志
	Console    bool     `yaml:"console"`     // 是否同时输出到控制台
}

// DefaultLogConfig 只输出到控制台的默认配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:      InfoLevel,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Console:    true,
	}
}

// Logger 包装 zap.Logger
type Logger struct {
	zap  *zap.Logger
	atom zap.AtomicLevel
}

var defaultLogger *Logger

func init() {
	logger, err := NewLogger(DefaultLogConfig())
	if err != nil {
		panic(fmt.Sprintf("初始化默认日志器失败: %v", err))
	}
	defaultLogger = logger
}

// GetLogger 获取默认日志器
func GetLogger() *Logger {
	return defaultLogger
}

// SetLogger 替换默认日志器
func SetLogger(logger *Logger) {
	defaultLogger = logger
}

// NewLogger 按配置创建日志器，输出JSON格式
func NewLogger(cfg LogConfig) (*Logger, error) {
	return newLogger(cfg, nil)
}

// newLogger extra 为额外的输出目标，测试用
func newLogger(cfg LogConfig, extra io.Writer) (*Logger, error) {
	var writers []io.Writer

	atom := zap.NewAtomicLevelAt(getZapLevel(cfg.Level))

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if cfg.Filename != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}
	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if extra != nil {
		writers = append(writers, extra)
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(io.MultiWriter(writers...)),
		atom,
	)

	return &Logger{
		zap:  zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		atom: atom,
	}, nil
}

func getZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLevel 动态设置日志级别
func (l *Logger) SetLevel(level LogLevel) {
	l.atom.SetLevel(getZapLevel(level))
}

func (l *Logger) Debug(msg string, fields ...zapcore.Field) {
	l.zap.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zapcore.Field) {
	l.zap.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zapcore.Field) {
	l.zap.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zapcore.Field) {
	l.zap.Error(msg, fields...)
}

// Named 创建子日志器
func (l *Logger) Named(name string) *Logger {
	return &Logger{zap: l.zap.Named(name), atom: l.atom}
}

// With 创建带有指定字段的日志器
func (l *Logger) With(fields ...zapcore.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...), atom: l.atom}
}

// WithErr 附加错误字段，err 为 nil 时原样返回
func (l *Logger) WithErr(err error) *Logger {
	if err == nil {
		return l
	}
	return l.With(zap.Error(err))
}

// Sync 刷新缓冲区
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

func Debug(msg string, fields ...zapcore.Field) {
	defaultLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...zapcore.Field) {
	defaultLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	defaultLogger.Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	defaultLogger.Error(msg, fields...)
}

// Field 日志字段
type Field = zapcore.Field

// 常用字段构造函数
var (
	Any        = zap.Any
	Bool       = zap.Bool
	Duration   = zap.Duration
	Float64    = zap.Float64
	Int        = zap.Int
	String     = zap.String
	ErrorField = zap.Error
)
