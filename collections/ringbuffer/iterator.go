package ringbuffer

import "fmt"

// Iterator 缓冲区上的随机访问游标.
//
// Iterator 只是对所属缓冲区的借用：记录物理槽位和创建时的结构版本号.
// 缓冲区发生扩容、弹出、插入或清空后，已有迭代器全部失效，
// Value/Set 返回 ErrStaleIterator，Add 等移动操作 panic.
// 单纯的 PushFront/PushBack（未触发扩容）、Set、排序和反转不会使迭代器失效.
//
// 末尾哨兵的物理位置固定为 Cap()，与是否分段无关.
type Iterator[T any] struct {
	rb  *RingBuffer[T]
	pos int
	gen uint64
}

// Valid 判断迭代器是否仍然有效.
func (it Iterator[T]) Valid() bool {
	return it.rb != nil && it.gen == it.rb.gen
}

// IsEnd 判断是否为末尾哨兵.
func (it Iterator[T]) IsEnd() bool {
	return it.rb != nil && it.pos == len(it.rb.buf)
}

// Index 返回迭代器的逻辑下标，末尾哨兵返回 Len().
//
// 逻辑下标是相对头部元素的偏移，不是底层数组的下标.
func (it Iterator[T]) Index() int {
	rb := it.rb
	switch {
	case it.pos == len(rb.buf):
		return rb.size
	case it.pos >= rb.front:
		return it.pos - rb.front
	default:
		return len(rb.buf) - (rb.front - it.pos)
	}
}

// Value 返回迭代器指向的元素.
func (it Iterator[T]) Value() (T, error) {
	if err := it.check(); err != nil {
		var zero T
		return zero, err
	}
	return it.get(), nil
}

// Set 替换迭代器指向的元素.
func (it Iterator[T]) Set(item T) error {
	if err := it.check(); err != nil {
		return err
	}
	it.put(item)
	return nil
}

// Equal 判断两个迭代器是否属于同一缓冲区且指向同一槽位.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.rb == other.rb && it.pos == other.pos
}

// Less 按逻辑顺序比较两个迭代器.
//
// 分段状态下，位于 [front, 数组末尾) 的迭代器排在位于 [0, back] 的迭代器之前，
// 同一段内按物理槽位比较. 末尾哨兵总是最大.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	if !it.rb.IsParted() {
		return it.pos < other.pos
	}

	a, b := it.beforeWrap(), other.beforeWrap()
	if a != b {
		return a
	}
	return it.pos < other.pos
}

// Distance 返回两个迭代器的逻辑距离 it - other.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	end := len(it.rb.buf)
	if !it.rb.IsParted() && it.pos != end && other.pos != end {
		return it.pos - other.pos
	}
	return it.Index() - other.Index()
}

// Add 返回向后移动 n 个逻辑位置（n 可为负）的迭代器.
//
// 目标位置超出 [0, Len()] 或迭代器已失效时 panic，与切片越界一致.
func (it Iterator[T]) Add(n int) Iterator[T] {
	if !it.Valid() {
		panic(ErrStaleIterator)
	}

	moved, err := it.rb.IteratorAt(it.Index() + n)
	if err != nil {
		panic(err)
	}
	return moved
}

// Sub 返回向前移动 n 个逻辑位置的迭代器.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	return it.Add(-n)
}

// Next 返回下一个位置的迭代器.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev 返回上一个位置的迭代器.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// beforeWrap 判断是否位于 [front, 数组末尾) 段.
func (it Iterator[T]) beforeWrap() bool {
	return it.rb.front <= it.pos && it.pos < len(it.rb.buf)
}

func (it Iterator[T]) check() error {
	if !it.Valid() {
		return ErrStaleIterator
	}
	if it.IsEnd() {
		return fmt.Errorf("%w: 末尾迭代器不可解引用", ErrIndexOutOfRange)
	}
	return nil
}

func (it Iterator[T]) get() T {
	return it.rb.buf[it.pos]
}

func (it Iterator[T]) put(item T) {
	it.rb.buf[it.pos] = item
}
