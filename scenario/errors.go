package scenario

import "errors"

// 预定义错误.
var (
	// ErrNilConfig 配置为空.
	ErrNilConfig = errors.New("scenario: 配置不能为空")
	// ErrUnknownTarget 未知的目标容器类型.
	ErrUnknownTarget = errors.New("scenario: 未知的目标容器")
	// ErrUnknownOp 目标容器不支持该操作.
	ErrUnknownOp = errors.New("scenario: 不支持的操作")
	// ErrInvalidCapacity 初始容量为负数.
	ErrInvalidCapacity = errors.New("scenario: 初始容量不能为负数")
	// ErrNoSteps 场景没有任何步骤.
	ErrNoSteps = errors.New("scenario: 场景步骤为空")
)
