package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel разбирает строковый уровень логирования из конфига
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger логгер с уровнями поверх zap.SugaredLogger.
// Пишет в stdout и (опционально) в файл.
type Logger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
	file  *os.File
}

// New создает логгер. Если filePath пустой, логи пишутся только в stdout
func New(filePath string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	atomic := zap.NewAtomicLevelAt(lvl)
	encoder := zapcore.NewJSONEncoder(encoderConfig())

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atomic),
	}

	var file *os.File
	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), atomic))
	}

	return &Logger{
		sugar: zap.New(zapcore.NewTee(cores...)).Sugar(),
		level: atomic,
		file:  file,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level zapcore.Level) *Logger {
	atomic := zap.NewAtomicLevelAt(level)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(w), atomic)

	return &Logger{
		sugar: zap.New(core).Sugar(),
		level: atomic,
	}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// SetLevel меняет уровень логирования без пересоздания логгера
func (l *Logger) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
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
	l.sugar.Errorf(format, v...)
	l.Close()
	os.Exit(1)
}

// Close сбрасывает буферы zap и закрывает файл логов, если он был открыт
func (l *Logger) Close() {
	// Sync для stdout на части платформ возвращает EINVAL, поэтому ошибка игнорируется
	_ = l.sugar.Sync()

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}
