// Package metrics 提供环形缓冲区的 Prometheus 指标收集功能.
package metrics

import (
	"net/http"

	"github.com/Tsukikage7/ringkit/collections/ringbuffer"
)

// 操作结果标签值.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Collector 指标收集器接口.
type Collector interface {
	// RecordStats 记录名为 name 的缓冲区的状态快照
	RecordStats(name string, stats ringbuffer.Stats)

	// RecordOperation 记录一次操作及其结果，err 为 nil 表示成功
	RecordOperation(name, op string, err error)

	// Handler
	GetHandler() http.Handler
	GetPath() string
}

// NewMetrics 创建指标收集器.
func NewMetrics(cfg *Config) (*PrometheusCollector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return NewPrometheus(cfg)
}

// MustNewMetrics 创建指标收集器，失败时 panic.
func MustNewMetrics(cfg *Config) *PrometheusCollector {
	c, err := NewMetrics(cfg)
	if err != nil {
		panic(err)
	}
	return c
}
