package ringbuffer

import "errors"

// 预定义错误常量.
var (
	// ErrEmpty 缓冲区为空.
	ErrEmpty = errors.New("ringbuffer: 缓冲区为空")

	// ErrIndexOutOfRange 索引越界.
	ErrIndexOutOfRange = errors.New("ringbuffer: 索引越界")

	// ErrStaleIterator 迭代器在缓冲区结构变更后失效.
	ErrStaleIterator = errors.New("ringbuffer: 迭代器已失效")
)
