package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger printf-логгер поверх zap
// Пишет в stdout и, если указан, в файл
type Logger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// New создает логгер с выводом в файл (опционально) и уровнем логирования
// Допустимые уровни: debug, info, warn, error
func New(filePath string, level string) (*Logger, error) {
	zapLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	writers := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}

	var file *os.File
	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
		}
		writers = append(writers, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(writers...),
		zap.NewAtomicLevelAt(zapLevel),
	)

	return &Logger{
		sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(),
		file:  file,
	}, nil
}

// NewFromZap оборачивает готовый zap логгер (используется в тестах с zaptest/observer)
func NewFromZap(l *zap.Logger) *Logger {
	return &Logger{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// NewNop логгер, который ничего не пишет
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close сбрасывает буферы и закрывает файл логов
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}
