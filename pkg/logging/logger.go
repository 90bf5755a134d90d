package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Logger      = zap.NewNop()         // 全局 Logger 实例
	AtomicLevel = zap.NewAtomicLevel() // 全局共享日志级别
)

// Options 日志配置，对应 config.yaml 的 log 节点
type Options struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`    // MB
	MaxBackups int    `mapstructure:"max_backups"` // 保留多少个备份文件
	MaxAge     int    `mapstructure:"max_age"`     // 天
	Compress   bool   `mapstructure:"compress"`
	// Console 为 false 时只写文件
	Console bool `mapstructure:"console"`
}

// withDefaults 设置默认值
func (o Options) withDefaults() Options {
	if o.Level == "" {
		o.Level = "info"
	}
	if o.Path == "" {
		o.Path = "logs/i18n.log"
	}
	if o.MaxSize <= 0 {
		o.MaxSize = 10
	}
	if o.MaxBackups <= 0 {
		o.MaxBackups = 5
	}
	if o.MaxAge <= 0 {
		o.MaxAge = 7
	}
	return o
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006/01/02 - 15:04:05"))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New 构建 logger（控制台 + lumberjack 文件轮转），不修改全局状态
func New(opts Options) (*zap.Logger, zap.AtomicLevel, error) {
	opts = opts.withDefaults()

	// 解析日志级别（安全处理无效值）
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zap.InfoLevel
	}
	atomicLevel := zap.NewAtomicLevelAt(level)

	// 确保日志目录存在
	if err := os.MkdirAll(filepath.Dir(opts.Path), os.ModePerm); err != nil {
		return nil, atomicLevel, fmt.Errorf("create log directory: %w", err)
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
			LocalTime:  true,
		}), atomicLevel),
	}
	if opts.Console {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), atomicLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), atomicLevel, nil
}

// Init 初始化全局 Logger 并替换 zap 全局 logger
func Init(opts Options) error {
	logger, level, err := New(opts)
	if err != nil {
		return err
	}
	Logger = logger
	AtomicLevel = level
	zap.ReplaceGlobals(Logger)

	Logger.Info("logger initialized", zap.String("level", level.String()))
	return nil
}
