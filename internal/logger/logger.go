package logger

import (
	"os"

	"github.com/programmerrush/api-bills/internal/conf"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the application logger from config. In dev mode it writes
// human-readable output to stdout; otherwise JSON to a rotating log file.
// The returned cleanup flushes buffered entries and is meant for Wire.
func NewLogger(cfg *conf.AppConfig) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.LogConfig.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var core zapcore.Core
	if cfg.Mode == "dev" {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		)
	} else {
		writer := &lumberjack.Logger{
			Filename:   cfg.LogConfig.Filename,
			MaxSize:    cfg.LogConfig.MaxSize,
			MaxAge:     cfg.LogConfig.MaxAge,
			MaxBackups: cfg.LogConfig.MaxBackups,
		}
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		core = zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(writer),
			level,
		)
	}

	logger := zap.New(core, zap.AddCaller()).With(
		zap.String("app", cfg.Name),
		zap.String("version", cfg.Version),
	)

	cleanup := func() {
		_ = logger.Sync()
	}

	return logger, cleanup, nil
}
