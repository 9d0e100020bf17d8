// Package stack 提供基于环形缓冲区的后进先出栈.
package stack

import (
	"iter"

	"github.com/Tsukikage7/ringkit/collections/ringbuffer"
)

// Stack 后进先出栈.
//
// 栈顶是内部缓冲区的尾部，遍历和格式化按从栈底到栈顶的顺序输出.
type Stack[T any] struct {
	rb *ringbuffer.RingBuffer[T]
}

// New 创建指定初始容量的栈.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{rb: ringbuffer.New[T](capacity)}
}

// Push 压入元素.
func (s *Stack[T]) Push(item T) {
	s.rb.PushBack(item)
}

// Pop 弹出栈顶元素，栈为空时返回 ringbuffer.ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	return s.rb.PopBack()
}

// Peek 查看栈顶元素（不弹出）.
func (s *Stack[T]) Peek() (T, error) {
	return s.rb.Back()
}

// Len 返回元素数量.
func (s *Stack[T]) Len() int {
	return s.rb.Len()
}

// IsEmpty 判断是否为空.
func (s *Stack[T]) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Begin 返回指向栈底的迭代器.
func (s *Stack[T]) Begin() ringbuffer.Iterator[T] {
	return s.rb.Begin()
}

// End 返回末尾哨兵迭代器.
func (s *Stack[T]) End() ringbuffer.Iterator[T] {
	return s.rb.End()
}

// Values 从栈底到栈顶遍历元素.
func (s *Stack[T]) Values() iter.Seq[T] {
	return s.rb.Values()
}

// ToString 从栈底到栈顶输出元素，每个元素后都跟一个 sep.
func (s *Stack[T]) ToString(sep string) string {
	return s.rb.ToString(sep)
}

// String 实现 fmt.Stringer.
func (s *Stack[T]) String() string {
	return s.rb.String()
}

// Stats 返回底层缓冲区的状态快照.
func (s *Stack[T]) Stats() ringbuffer.Stats {
	return s.rb.Stats()
}
