package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger zap 日志实现.
type zapLogger struct {
	logger  *zap.Logger
	sugar   *zap.SugaredLogger
	closers []io.Closer
}

// newZapLogger 创建 zap logger.
func newZapLogger(config *Config) (Logger, error) {
	level := parseLevel(config.Level)
	encoder := buildEncoder(config)

	var cores []zapcore.Core
	var closers []io.Closer

	// 文件输出
	if config.needsFileOutput() {
		file, err := openLogFile(config.LogFile)
		if err != nil {
			return nil, err
		}
		closers = append(closers, file)
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	// 控制台输出
	if config.shouldOutputToConsole() {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level))
	}

	var options []zap.Option
	if config.EnableCaller {
		options = append(options, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	zapLog := zap.New(zapcore.NewTee(cores...), options...).
		With(zap.String("service", config.ServiceName))

	return &zapLogger{
		logger:  zapLog,
		sugar:   zapLog.Sugar(),
		closers: closers,
	}, nil
}

// NewNop 返回丢弃所有输出的 logger.
func NewNop() Logger {
	l := zap.NewNop()
	return &zapLogger{logger: l, sugar: l.Sugar()}
}

// openLogFile 打开日志文件，必要时创建目录.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateDir, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFile, err)
	}
	return file, nil
}

// buildEncoder 构建编码器.
func buildEncoder(config *Config) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "msg"
	cfg.EncodeTime = timeEncoder(config.TimeFormat)
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	if strings.EqualFold(config.Format, FormatConsole) {
		cfg.ConsoleSeparator = "\t"
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

// timeEncoder 获取时间编码器.
func timeEncoder(format string) zapcore.TimeEncoder {
	switch strings.ToLower(format) {
	case TimeFormatISO8601:
		return zapcore.ISO8601TimeEncoder
	case TimeFormatRFC3339:
		return zapcore.RFC3339TimeEncoder
	case TimeFormatEpoch:
		return zapcore.EpochTimeEncoder
	default:
		return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(time.DateTime))
		}
	}
}

// parseLevel 解析日志级别.
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn, "warning":
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (z *zapLogger) Debug(args ...any) {
	z.sugar.Debug(args...)
}

func (z *zapLogger) Debugf(format string, args ...any) {
	z.sugar.Debugf(format, args...)
}

func (z *zapLogger) Info(args ...any) {
	z.sugar.Info(args...)
}

func (z *zapLogger) Infof(format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *zapLogger) Warn(args ...any) {
	z.sugar.Warn(args...)
}

func (z *zapLogger) Warnf(format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *zapLogger) Error(args ...any) {
	z.sugar.Error(args...)
}

func (z *zapLogger) Errorf(format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

// With 返回带有附加字段的 logger.
func (z *zapLogger) With(fields ...Field) Logger {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = toZapField(f)
	}

	newLogger := z.logger.With(zapFields...)
	return &zapLogger{
		logger:  newLogger,
		sugar:   newLogger.Sugar(),
		closers: z.closers,
	}
}

// WithContext 返回带有 context 中 runId 的 logger，没有 runId 时返回当前 logger.
func (z *zapLogger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return z
	}

	if runID, ok := ctx.Value(RunIDKey).(string); ok && runID != "" {
		return z.With(String("runId", runID))
	}
	return z
}

// Sync 同步日志缓冲区.
func (z *zapLogger) Sync() error {
	return z.logger.Sync()
}

// Close 关闭 logger 并释放资源.
func (z *zapLogger) Close() error {
	// stdout 的 sync 错误可以忽略，见 https://github.com/uber-go/zap/issues/328
	_ = z.logger.Sync()

	for _, c := range z.closers {
		if err := c.Close(); err != nil {
			return err
		}
	}
	return nil
}

// toZapField 将 Field 转换为 zap.Field.
func toZapField(f Field) zap.Field {
	switch v := f.Value.(type) {
	case string:
		return zap.String(f.Key, v)
	case int:
		return zap.Int(f.Key, v)
	case int64:
		return zap.Int64(f.Key, v)
	case uint64:
		return zap.Uint64(f.Key, v)
	case float64:
		return zap.Float64(f.Key, v)
	case bool:
		return zap.Bool(f.Key, v)
	case time.Duration:
		return zap.Duration(f.Key, v)
	case error:
		return zap.NamedError(f.Key, v)
	default:
		return zap.Reflect(f.Key, v)
	}
}

// 便捷字段构造函数

// String 创建字符串字段.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int 创建整数字段.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool 创建布尔字段.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration 创建时长字段.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err 创建错误字段，键为 error.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any 创建任意类型字段.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}
