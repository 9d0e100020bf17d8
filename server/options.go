package server

import (
	"os"
	"syscall"
	"time"

	"github.com/Tsukikage7/ringkit/logger"
)

// AppOption App 配置选项.
type AppOption func(*appOptions)

type appOptions struct {
	name            string
	logger          logger.Logger
	gracefulTimeout time.Duration
	signals         []os.Signal
}

func defaultAppOptions() *appOptions {
	return &appOptions{
		name:            "ringkit",
		logger:          logger.NewNop(),
		gracefulTimeout: 10 * time.Second,
		signals:         []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}
}

// WithName 设置应用名称.
func WithName(name string) AppOption {
	return func(o *appOptions) {
		o.name = name
	}
}

// WithLogger 设置日志记录器.
func WithLogger(log logger.Logger) AppOption {
	return func(o *appOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithGracefulTimeout 设置优雅关闭超时时间.
//
// 默认: 10 秒.
func WithGracefulTimeout(d time.Duration) AppOption {
	return func(o *appOptions) {
		o.gracefulTimeout = d
	}
}

// WithSignals 设置监听的系统信号.
//
// 默认: SIGINT, SIGTERM.
func WithSignals(signals ...os.Signal) AppOption {
	return func(o *appOptions) {
		o.signals = signals
	}
}

// HTTPOption HTTP 服务器配置选项.
type HTTPOption func(*httpOptions)

type httpOptions struct {
	addr         string
	readTimeout  time.Duration
	writeTimeout time.Duration
	logger       logger.Logger
}

func defaultHTTPOptions() *httpOptions {
	return &httpOptions{
		addr:         ":9100",
		readTimeout:  5 * time.Second,
		writeTimeout: 10 * time.Second,
		logger:       logger.NewNop(),
	}
}

// WithHTTPAddr 设置监听地址，端口为 0 时由系统分配.
func WithHTTPAddr(addr string) HTTPOption {
	return func(o *httpOptions) {
		o.addr = addr
	}
}

// WithHTTPReadTimeout 设置读取超时.
func WithHTTPReadTimeout(d time.Duration) HTTPOption {
	return func(o *httpOptions) {
		o.readTimeout = d
	}
}

// WithHTTPWriteTimeout 设置写入超时.
func WithHTTPWriteTimeout(d time.Duration) HTTPOption {
	return func(o *httpOptions) {
		o.writeTimeout = d
	}
}

// WithHTTPLogger 设置日志记录器.
func WithHTTPLogger(log logger.Logger) HTTPOption {
	return func(o *httpOptions) {
		if log != nil {
			o.logger = log
		}
	}
}
