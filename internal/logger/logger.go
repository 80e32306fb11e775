package logger

import (
	"context"

	"studio-admin/internal/config"
	"studio-admin/internal/database" // Import to get DB connection

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the console logger and tees it into the Mongo log sink
func NewLogger(lc fx.Lifecycle, cfg *config.Config, mongodb *database.MongodbDB) (*zap.Logger, error) {
	baseLogger, err := NewBaseLogger(cfg)
	if err != nil {
		return nil, err
	}

	// Async DB writer, drained on shutdown
	dbWriter := NewDBLogWriter(mongodb.DB.Collection(database.ColLogs), cfg.AppId)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			dbWriter.Close()
			_ = baseLogger.Sync()
			return nil
		},
	})

	// Replace the logger's core with a tee that also feeds the DB writer
	finalCore := NewDBCore(baseLogger.Core(), dbWriter)

	return zap.New(finalCore, zap.AddCaller()), nil
}

// NewBaseLogger returns the console logger, plus a rotating file when LOG_FILE is set
func NewBaseLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Important: Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	if cfg.LogFile == "" {
		return baseLogger, nil
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zapConfig.EncoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}),
		zapConfig.Level,
	)

	return zap.New(zapcore.NewTee(baseLogger.Core(), fileCore), zap.AddCaller()), nil
}
