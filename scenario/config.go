// Package scenario 提供以配置描述的环形缓冲区操作脚本及其执行器.
//
// 一个场景指定目标容器（buffer、queue 或 stack）、初始容量和一组步骤，
// Runner 依次执行步骤，记录日志与指标，并返回运行报告.
package scenario

import (
	"fmt"
	"slices"

	"github.com/Tsukikage7/ringkit/logger"
	"github.com/Tsukikage7/ringkit/metrics"
)

// 目标容器类型.
const (
	TargetBuffer = "buffer"
	TargetQueue  = "queue"
	TargetStack  = "stack"
)

// buffer 操作.
const (
	OpPushFront = "push_front"
	OpPushBack  = "push_back"
	OpPopFront  = "pop_front"
	OpPopBack   = "pop_back"
	OpInsert    = "insert"
	OpAt        = "at"
	OpGrow      = "grow"
	OpReserve   = "reserve"
	OpClear     = "clear"
	OpSort      = "sort"
	OpReverse   = "reverse"
)

// queue 与 stack 操作.
const (
	OpEnqueue = "enqueue"
	OpDequeue = "dequeue"
	OpPush    = "push"
	OpPop     = "pop"
)

// DefaultSeparator 默认输出分隔符.
const DefaultSeparator = " "

var targetOps = map[string][]string{
	TargetBuffer: {
		OpPushFront, OpPushBack, OpPopFront, OpPopBack, OpInsert, OpAt,
		OpGrow, OpReserve, OpClear, OpSort, OpReverse,
	},
	TargetQueue: {OpEnqueue, OpDequeue},
	TargetStack: {OpPush, OpPop},
}

// Step 场景中的一个步骤.
//
// Value 是写入的元素（reserve 时为目标容量），Pos 是 insert 和 at 的逻辑下标.
type Step struct {
	Op    string `json:"op" yaml:"op" mapstructure:"op"`
	Value int    `json:"value" yaml:"value" mapstructure:"value"`
	Pos   int    `json:"pos" yaml:"pos" mapstructure:"pos"`
}

// Config 场景配置.
type Config struct {
	Name      string `json:"name" yaml:"name" mapstructure:"name"`
	Target    string `json:"target" yaml:"target" mapstructure:"target"`
	Capacity  int    `json:"capacity" yaml:"capacity" mapstructure:"capacity"`
	Separator string `json:"separator" yaml:"separator" mapstructure:"separator"`
	Steps     []Step `json:"steps" yaml:"steps" mapstructure:"steps"`

	Log     logger.Config  `json:"log" yaml:"log" mapstructure:"log"`
	Metrics metrics.Config `json:"metrics" yaml:"metrics" mapstructure:"metrics"`
}

// Validate 验证配置，未设置的 Target 视为 buffer.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	target := c.target()
	ops, ok := targetOps[target]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTarget, c.Target)
	}

	if c.Capacity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Capacity)
	}

	if len(c.Steps) == 0 {
		return ErrNoSteps
	}

	for i, step := range c.Steps {
		if !slices.Contains(ops, step.Op) {
			return fmt.Errorf("%w: steps[%d] %q 不适用于 %s", ErrUnknownOp, i, step.Op, target)
		}
	}

	return c.Log.Validate()
}

// ApplyDefaults 应用默认值.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "default"
	}
	c.Target = c.target()
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = metrics.DefaultConfig().Namespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = metrics.DefaultConfig().Path
	}
}

func (c *Config) target() string {
	if c.Target == "" {
		return TargetBuffer
	}
	return c.Target
}
