// Package ringbuffer 提供基于环形数组的动态双端容器.
package ringbuffer

import (
	"fmt"
	"iter"
	"strings"
)

// minGrowCapacity 扩容后的最小容量.
const minGrowCapacity = 10

// empty front/back 在缓冲区为空时的哨兵值.
const empty = -1

// RingBuffer 环形双端缓冲区.
//
// 两端 PushFront/PushBack/PopFront/PopBack 均摊 O(1)，随机访问 O(1).
// 缓冲区满时按 max(10, 2*容量) 扩容，扩容会把元素按逻辑顺序搬到新数组开头.
// 清空不会释放底层数组.
//
// 当 front 的物理下标大于 back 时，存活区域跨过数组末尾回绕到 0 号槽位，
// 称为"分段"状态，见 IsParted.
//
// RingBuffer 不是并发安全的.
//
// 示例:
//
//	rb := ringbuffer.New[int](0)
//	rb.PushBack(1)
//	rb.PushBack(2)
//	rb.PushFront(0)
//	rb.ToString(",") // "0,1,2,"
type RingBuffer[T any] struct {
	buf   []T
	front int // 第一个元素的物理下标
	back  int // 最后一个元素的物理下标
	size  int
	gen   uint64 // 结构版本号，扩容、弹出、插入、清空时递增
	grows int
}

// New 创建指定初始容量的缓冲区，容量为 0 时首次写入触发扩容.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RingBuffer[T]{
		buf:   make([]T, capacity),
		front: empty,
		back:  empty,
	}
}

// From 从切片创建缓冲区，容量等于切片长度.
func From[T any](items []T) *RingBuffer[T] {
	rb := New[T](len(items))
	for _, item := range items {
		rb.PushBack(item)
	}
	return rb
}

// PushFront 在头部添加元素.
func (rb *RingBuffer[T]) PushFront(item T) {
	if rb.IsFull() {
		rb.Grow()
	}

	if rb.size == 0 {
		rb.front, rb.back = 0, 0
	} else {
		rb.front = rb.prev(rb.front)
	}

	rb.buf[rb.front] = item
	rb.size++
}

// PushBack 在尾部添加元素.
func (rb *RingBuffer[T]) PushBack(item T) {
	if rb.IsFull() {
		rb.Grow()
	}

	if rb.size == 0 {
		rb.front, rb.back = 0, 0
	} else {
		rb.back = rb.next(rb.back)
	}

	rb.buf[rb.back] = item
	rb.size++
}

// PopFront 从头部移除并返回元素，缓冲区为空时返回 ErrEmpty.
func (rb *RingBuffer[T]) PopFront() (T, error) {
	var zero T
	if rb.size == 0 {
		return zero, ErrEmpty
	}

	item := rb.buf[rb.front]
	rb.buf[rb.front] = zero // 帮助 GC

	if rb.size == 1 {
		rb.front, rb.back = empty, empty
	} else {
		rb.front = rb.next(rb.front)
	}

	rb.size--
	rb.gen++
	return item, nil
}

// PopBack 从尾部移除并返回元素，缓冲区为空时返回 ErrEmpty.
func (rb *RingBuffer[T]) PopBack() (T, error) {
	var zero T
	if rb.size == 0 {
		return zero, ErrEmpty
	}

	item := rb.buf[rb.back]
	rb.buf[rb.back] = zero // 帮助 GC

	if rb.size == 1 {
		rb.front, rb.back = empty, empty
	} else {
		rb.back = rb.prev(rb.back)
	}

	rb.size--
	rb.gen++
	return item, nil
}

// Front 查看头部元素（不移除）.
func (rb *RingBuffer[T]) Front() (T, error) {
	if rb.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return rb.buf[rb.front], nil
}

// Back 查看尾部元素（不移除）.
func (rb *RingBuffer[T]) Back() (T, error) {
	if rb.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return rb.buf[rb.back], nil
}

// Insert 在逻辑位置 pos 插入元素，原来位于 pos 及之后的元素整体后移一位.
//
// pos 必须在 [0, Len()] 之间，否则返回 ErrIndexOutOfRange 且缓冲区不变.
// pos 为 0 等价于 PushFront，pos 为 Len() 等价于 PushBack.
// 其余情况从距离 pos 较近的一端搬移元素，时间复杂度 O(min(pos, Len()-pos)).
func (rb *RingBuffer[T]) Insert(pos int, item T) error {
	if pos < 0 || pos > rb.size {
		return fmt.Errorf("%w: 插入位置 %d, 长度 %d", ErrIndexOutOfRange, pos, rb.size)
	}

	switch {
	case pos == 0:
		rb.PushFront(item)
	case pos == rb.size:
		rb.PushBack(item)
	case pos < rb.size/2:
		rb.insertFromFront(pos, item)
	default:
		rb.insertFromBack(pos, item)
	}

	rb.gen++
	return nil
}

// insertFromBack 在尾部追加占位，把 [pos, size) 向尾部移动一位.
func (rb *RingBuffer[T]) insertFromBack(pos int, item T) {
	var zero T
	rb.PushBack(zero)

	dst := rb.back
	for i := rb.size - 1; i > pos; i-- {
		src := rb.prev(dst)
		rb.buf[dst] = rb.buf[src]
		dst = src
	}
	rb.buf[dst] = item
}

// insertFromFront 在头部追加占位，把 [0, pos) 向头部移动一位.
func (rb *RingBuffer[T]) insertFromFront(pos int, item T) {
	var zero T
	rb.PushFront(zero)

	dst := rb.front
	for i := 0; i < pos; i++ {
		src := rb.next(dst)
		rb.buf[dst] = rb.buf[src]
		dst = src
	}
	rb.buf[dst] = item
}

// At 获取逻辑位置 index 的元素（0 为头部）.
func (rb *RingBuffer[T]) At(index int) (T, error) {
	if index < 0 || index >= rb.size {
		var zero T
		return zero, rb.outOfRange(index)
	}
	return rb.buf[rb.slot(index)], nil
}

// Set 设置逻辑位置 index 的元素.
func (rb *RingBuffer[T]) Set(index int, item T) error {
	if index < 0 || index >= rb.size {
		return rb.outOfRange(index)
	}
	rb.buf[rb.slot(index)] = item
	return nil
}

// Grow 扩容到 max(10, 2*Cap())，并把元素按逻辑顺序搬到新数组开头.
func (rb *RingBuffer[T]) Grow() {
	rb.relocate(max(minGrowCapacity, len(rb.buf)<<1))
}

// Reserve 保证容量至少为 n，n 不大于当前容量时不做任何事.
func (rb *RingBuffer[T]) Reserve(n int) {
	if n <= len(rb.buf) {
		return
	}
	rb.relocate(n)
}

// Clear 清空缓冲区，保留容量.
func (rb *RingBuffer[T]) Clear() {
	var zero T
	for i, p := 0, rb.front; i < rb.size; i, p = i+1, rb.next(p) {
		rb.buf[p] = zero
	}

	rb.front, rb.back = empty, empty
	rb.size = 0
	rb.gen++
}

// Len 返回元素数量.
func (rb *RingBuffer[T]) Len() int {
	return rb.size
}

// Cap 返回槽位总数.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.buf)
}

// IsEmpty 判断是否为空.
func (rb *RingBuffer[T]) IsEmpty() bool {
	return rb.size == 0
}

// IsFull 判断是否已满，已满时写入会触发扩容.
func (rb *RingBuffer[T]) IsFull() bool {
	return rb.size == len(rb.buf)
}

// IsParted 判断存活区域是否跨过数组末尾回绕.
func (rb *RingBuffer[T]) IsParted() bool {
	return rb.size > 0 && rb.front > rb.back
}

// Begin 返回指向头部元素的迭代器，缓冲区为空时等于 End().
func (rb *RingBuffer[T]) Begin() Iterator[T] {
	if rb.size == 0 {
		return rb.End()
	}
	return rb.iteratorAt(rb.front)
}

// End 返回末尾哨兵迭代器，其物理位置固定为数组末尾的下一个槽位.
func (rb *RingBuffer[T]) End() Iterator[T] {
	return rb.iteratorAt(len(rb.buf))
}

// IteratorAt 返回逻辑位置 index 的迭代器，index 等于 Len() 时返回 End().
func (rb *RingBuffer[T]) IteratorAt(index int) (Iterator[T], error) {
	if index < 0 || index > rb.size {
		return Iterator[T]{}, rb.outOfRange(index)
	}
	if index == rb.size {
		return rb.End(), nil
	}
	return rb.iteratorAt(rb.slot(index)), nil
}

// ToSlice 按逻辑顺序转换为切片.
func (rb *RingBuffer[T]) ToSlice() []T {
	result := make([]T, 0, rb.size)
	for v := range rb.Values() {
		result = append(result, v)
	}
	return result
}

// All 返回按逻辑顺序遍历 (下标, 元素) 的迭代器.
// 遍历期间弹出、插入、清空或扩容会导致 panic.
func (rb *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		end := rb.End()
		for i, it := 0, rb.Begin(); !it.Equal(end); i, it = i+1, it.Next() {
			if !yield(i, it.get()) {
				return
			}
		}
	}
}

// Values 返回按逻辑顺序遍历元素的迭代器.
func (rb *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range rb.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ForEach 遍历缓冲区（从头到尾）.
func (rb *RingBuffer[T]) ForEach(fn func(T)) {
	for v := range rb.Values() {
		fn(v)
	}
}

// ToString 按逻辑顺序输出元素，每个元素后都跟一个 sep，包括最后一个.
//
//	rb.ToString(",") // "1,2,3,"
func (rb *RingBuffer[T]) ToString(sep string) string {
	var sb strings.Builder
	for v := range rb.Values() {
		sb.WriteString(fmt.Sprint(v))
		sb.WriteString(sep)
	}
	return sb.String()
}

// String 实现 fmt.Stringer，使用空格分隔.
func (rb *RingBuffer[T]) String() string {
	return rb.ToString(" ")
}

// Clone 复制缓冲区，保留物理布局.
func (rb *RingBuffer[T]) Clone() *RingBuffer[T] {
	newBuf := make([]T, len(rb.buf))
	copy(newBuf, rb.buf)
	return &RingBuffer[T]{
		buf:   newBuf,
		front: rb.front,
		back:  rb.back,
		size:  rb.size,
	}
}

// 内部方法

// next 返回 p 的下一个槽位，末尾槽位之后是 0.
func (rb *RingBuffer[T]) next(p int) int {
	if p == len(rb.buf)-1 {
		return 0
	}
	return p + 1
}

// prev 返回 p 的上一个槽位，0 之前是末尾槽位.
func (rb *RingBuffer[T]) prev(p int) int {
	if p == 0 {
		return len(rb.buf) - 1
	}
	return p - 1
}

// slot 把逻辑下标转换为物理下标，要求 0 <= index < size.
func (rb *RingBuffer[T]) slot(index int) int {
	remaining := len(rb.buf) - rb.front
	if index < remaining {
		return rb.front + index
	}
	return index - remaining
}

func (rb *RingBuffer[T]) iteratorAt(pos int) Iterator[T] {
	return Iterator[T]{rb: rb, pos: pos, gen: rb.gen}
}

// relocate 分配容量为 newCap 的新数组并按逻辑顺序拷贝元素，newCap 不得小于 size.
func (rb *RingBuffer[T]) relocate(newCap int) {
	newBuf := make([]T, newCap)
	for i, p := 0, rb.front; i < rb.size; i, p = i+1, rb.next(p) {
		newBuf[i] = rb.buf[p]
	}

	rb.buf = newBuf
	if rb.size == 0 {
		rb.front, rb.back = empty, empty
	} else {
		rb.front, rb.back = 0, rb.size-1
	}
	rb.gen++
	rb.grows++
}

func (rb *RingBuffer[T]) outOfRange(index int) error {
	return fmt.Errorf("%w: 下标 %d, 长度 %d", ErrIndexOutOfRange, index, rb.size)
}
