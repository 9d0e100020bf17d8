package scenario

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tsukikage7/ringkit/logger"
	"github.com/Tsukikage7/ringkit/metrics"
)

// Result 单个步骤的执行结果.
type Result struct {
	Step Step
	// Value 为取值类操作（pop、dequeue、at）得到的元素，HasValue 为 false 时无意义
	Value    int
	HasValue bool
	Err      error
}

// Report 一次场景运行的报告.
type Report struct {
	RunID    string
	Name     string
	Target   string
	Executed int
	Failed   int
	Results  []Result

	// 运行结束时容器的状态
	Output string
	Sorted bool
	Parted bool
	Len    int
	Cap    int
}

// Option 执行器配置选项.
type Option func(*Runner)

// WithLogger 设置日志记录器，默认丢弃所有日志.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithMetrics 设置指标收集器，每个步骤后记录一次操作和状态快照.
func WithMetrics(collector metrics.Collector) Option {
	return func(r *Runner) {
		r.metrics = collector
	}
}

// Runner 场景执行器.
type Runner struct {
	config  *Config
	log     logger.Logger
	metrics metrics.Collector
}

// NewRunner 验证配置并创建执行器.
func NewRunner(cfg *Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	r := &Runner{
		config: cfg,
		log:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run 在新建的容器上依次执行全部步骤.
//
// 容器返回的错误（如 ringbuffer.ErrEmpty、ringbuffer.ErrIndexOutOfRange）
// 记入报告后继续执行下一步. ctx 取消时停止并返回已执行部分的报告和 ctx 的错误.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	cfg := r.config
	runID := uuid.NewString()
	ctx = logger.ContextWithRunID(ctx, runID)

	log := r.log.WithContext(ctx).With(
		logger.String("scenario", cfg.Name),
		logger.String("target", cfg.Target),
	)
	log.Infof("开始执行场景，共 %d 个步骤", len(cfg.Steps))

	c := newContainer(cfg.Target, cfg.Capacity)
	report := &Report{
		RunID:   runID,
		Name:    cfg.Name,
		Target:  cfg.Target,
		Results: make([]Result, 0, len(cfg.Steps)),
	}

	for i, step := range cfg.Steps {
		if err := ctx.Err(); err != nil {
			log.With(logger.Int("step", i), logger.Err(err)).Warn("场景被取消")
			r.finish(report, c)
			return report, err
		}

		value, ok, err := c.apply(step)
		report.Executed++
		report.Results = append(report.Results, Result{
			Step:     step,
			Value:    value,
			HasValue: ok,
			Err:      err,
		})

		if r.metrics != nil {
			r.metrics.RecordOperation(cfg.Name, step.Op, err)
			r.metrics.RecordStats(cfg.Name, c.stats())
		}

		stepLog := log.With(logger.Int("step", i), logger.String("op", step.Op))
		if err != nil {
			report.Failed++
			stepLog.With(logger.Err(err)).Warn("步骤执行失败")
			continue
		}
		if ok {
			stepLog = stepLog.With(logger.Int("value", value))
		}
		stepLog.Debug("步骤执行完成")
	}

	r.finish(report, c)
	log.With(
		logger.Int("executed", report.Executed),
		logger.Int("failed", report.Failed),
		logger.Int("len", report.Len),
		logger.Int("cap", report.Cap),
	).Info("场景执行完成")

	return report, nil
}

// finish 把容器的最终状态写入报告.
func (r *Runner) finish(report *Report, c container) {
	stats := c.stats()
	report.Output = c.toString(r.config.Separator)
	report.Sorted = c.sorted()
	report.Parted = stats.Parted
	report.Len = stats.Len
	report.Cap = stats.Cap
}
