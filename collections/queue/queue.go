// Package queue 提供基于环形缓冲区的先进先出队列.
package queue

import (
	"iter"

	"github.com/Tsukikage7/ringkit/collections/ringbuffer"
)

// Queue 先进先出队列.
//
// 内部持有一个 ringbuffer.RingBuffer，只暴露入队、出队、遍历和格式化，
// 不暴露插入、排序和扩容.
//
// 示例:
//
//	q := queue.New[string](0)
//	q.Enqueue("a")
//	q.Enqueue("b")
//	q.Dequeue() // "a"
type Queue[T any] struct {
	rb *ringbuffer.RingBuffer[T]
}

// New 创建指定初始容量的队列.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{rb: ringbuffer.New[T](capacity)}
}

// Enqueue 在队尾添加元素.
func (q *Queue[T]) Enqueue(item T) {
	q.rb.PushBack(item)
}

// Dequeue 移除并返回队头元素，队列为空时返回 ringbuffer.ErrEmpty.
func (q *Queue[T]) Dequeue() (T, error) {
	return q.rb.PopFront()
}

// Peek 查看队头元素（不移除）.
func (q *Queue[T]) Peek() (T, error) {
	return q.rb.Front()
}

// Len 返回元素数量.
func (q *Queue[T]) Len() int {
	return q.rb.Len()
}

// IsEmpty 判断是否为空.
func (q *Queue[T]) IsEmpty() bool {
	return q.rb.IsEmpty()
}

// Begin 返回指向队头的迭代器.
func (q *Queue[T]) Begin() ringbuffer.Iterator[T] {
	return q.rb.Begin()
}

// End 返回末尾哨兵迭代器.
func (q *Queue[T]) End() ringbuffer.Iterator[T] {
	return q.rb.End()
}

// Values 从队头到队尾遍历元素.
func (q *Queue[T]) Values() iter.Seq[T] {
	return q.rb.Values()
}

// ToString 从队头到队尾输出元素，每个元素后都跟一个 sep.
func (q *Queue[T]) ToString(sep string) string {
	return q.rb.ToString(sep)
}

// String 实现 fmt.Stringer.
func (q *Queue[T]) String() string {
	return q.rb.String()
}

// Stats 返回底层缓冲区的状态快照.
func (q *Queue[T]) Stats() ringbuffer.Stats {
	return q.rb.Stats()
}
