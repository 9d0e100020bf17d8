package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tsukikage7/ringkit/collections/ringbuffer"
)

// PrometheusCollector Prometheus 指标收集器实现.
type PrometheusCollector struct {
	config *Config

	// 缓冲区状态指标
	length   *prometheus.GaugeVec
	capacity *prometheus.GaugeVec
	parted   *prometheus.GaugeVec
	grows    *prometheus.CounterVec

	// 操作指标
	operations *prometheus.CounterVec

	// 上次记录的扩容次数，用于把 Stats.Grows 转换为计数器增量
	lastGrows map[string]int
	mu        sync.Mutex

	registry *prometheus.Registry
}

// NewPrometheus 创建 Prometheus 指标收集器.
func NewPrometheus(cfg *Config) (*PrometheusCollector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "ringkit"
	}

	// 创建新的注册表，避免与默认注册表冲突
	registry := prometheus.NewRegistry()

	c := &PrometheusCollector{
		config:    cfg,
		lastGrows: make(map[string]int),
		registry:  registry,
	}

	c.length = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "length",
			Help:      "Number of live elements in the ring buffer",
		},
		[]string{"buffer"},
	)

	c.capacity = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "capacity",
			Help:      "Slot count of the ring buffer backing array",
		},
		[]string{"buffer"},
	)

	c.parted = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "parted",
			Help:      "1 if the live region wraps past the end of the backing array",
		},
		[]string{"buffer"},
	)

	c.grows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "grows_total",
			Help:      "Total number of backing array reallocations",
		},
		[]string{"buffer"},
	)

	c.operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "operations_total",
			Help:      "Total number of ring buffer operations by result",
		},
		[]string{"buffer", "op", "result"},
	)

	collectors := []prometheus.Collector{
		c.length,
		c.capacity,
		c.parted,
		c.grows,
		c.operations,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegisterMetric, err)
		}
	}

	return c, nil
}

// RecordStats 记录缓冲区状态快照.
func (c *PrometheusCollector) RecordStats(name string, stats ringbuffer.Stats) {
	c.length.WithLabelValues(name).Set(float64(stats.Len))
	c.capacity.WithLabelValues(name).Set(float64(stats.Cap))

	parted := 0.0
	if stats.Parted {
		parted = 1
	}
	c.parted.WithLabelValues(name).Set(parted)

	c.mu.Lock()
	delta := stats.Grows - c.lastGrows[name]
	// 缓冲区被替换后扩容次数可能回退，此时重新计起
	if delta < 0 {
		delta = stats.Grows
	}
	c.lastGrows[name] = stats.Grows
	c.mu.Unlock()

	if delta > 0 {
		c.grows.WithLabelValues(name).Add(float64(delta))
	}
}

// RecordOperation 记录一次操作.
func (c *PrometheusCollector) RecordOperation(name, op string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	c.operations.WithLabelValues(name, op, result).Inc()
}

// GetHandler 返回指标 HTTP 处理器.
func (c *PrometheusCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// GetPath 返回指标暴露路径.
func (c *PrometheusCollector) GetPath() string {
	if c.config.Path == "" {
		return "/metrics"
	}
	return c.config.Path
}

// Registry 返回内部注册表.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}
