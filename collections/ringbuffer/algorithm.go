package ringbuffer

import (
	"cmp"
	"math/bits"
)

// 排序、反转等算法只通过 Iterator 访问元素，与缓冲区是否分段无关.

// insertionSortThreshold 区间长度不超过该值时改用插入排序.
const insertionSortThreshold = 12

// Sort 对元素按升序排序.
func Sort[T cmp.Ordered](rb *RingBuffer[T]) {
	rb.SortFunc(cmp.Compare[T])
}

// IsSorted 判断元素是否按升序排列.
func IsSorted[T cmp.Ordered](rb *RingBuffer[T]) bool {
	return rb.IsSortedFunc(cmp.Compare[T])
}

// SortFunc 使用比较函数排序，cmp(a, b) < 0 表示 a 排在 b 前面. 排序不稳定.
func (rb *RingBuffer[T]) SortFunc(cmp func(a, b T) int) {
	first, last := rb.Begin(), rb.End()
	n := last.Distance(first)
	introSort(first, last, cmp, 2*bits.Len(uint(n)))
}

// IsSortedFunc 判断元素是否按比较函数有序.
func (rb *RingBuffer[T]) IsSortedFunc(cmp func(a, b T) int) bool {
	first, last := rb.Begin(), rb.End()
	if !first.Less(last) {
		return true
	}

	for prev, it := first, first.Next(); it.Less(last); prev, it = it, it.Next() {
		if cmp(it.get(), prev.get()) < 0 {
			return false
		}
	}
	return true
}

// Reverse 反转元素顺序.
func (rb *RingBuffer[T]) Reverse() {
	first, last := rb.Begin(), rb.End()
	for first.Less(last) {
		last = last.Prev()
		if !first.Less(last) {
			return
		}
		swapIter(first, last)
		first = first.Next()
	}
}

func introSort[T any](first, last Iterator[T], cmp func(a, b T) int, depth int) {
	for {
		n := last.Distance(first)
		if n <= insertionSortThreshold {
			insertionSort(first, last, cmp)
			return
		}
		if depth == 0 {
			heapSort(first, n, cmp)
			return
		}
		depth--

		mid := partition(first, last, cmp)
		// 递归较短的一侧，较长的一侧继续循环
		if mid.Distance(first) < last.Distance(mid) {
			introSort(first, mid, cmp, depth)
			first = mid.Next()
		} else {
			introSort(mid.Next(), last, cmp, depth)
			last = mid
		}
	}
}

// partition 以三数取中的元素为基准划分 [first, last)，返回基准的最终位置.
func partition[T any](first, last Iterator[T], cmp func(a, b T) int) Iterator[T] {
	pivotIt := last.Prev()
	medianOfThree(first, first.Add(last.Distance(first)/2), pivotIt, cmp)
	swapIter(first.Add(last.Distance(first)/2), pivotIt)

	pivot := pivotIt.get()
	store := first
	for it := first; it.Less(pivotIt); it = it.Next() {
		if cmp(it.get(), pivot) < 0 {
			swapIter(it, store)
			store = store.Next()
		}
	}
	swapIter(store, pivotIt)
	return store
}

// medianOfThree 使 a <= b <= c.
func medianOfThree[T any](a, b, c Iterator[T], cmp func(a, b T) int) {
	if cmp(b.get(), a.get()) < 0 {
		swapIter(a, b)
	}
	if cmp(c.get(), b.get()) < 0 {
		swapIter(b, c)
		if cmp(b.get(), a.get()) < 0 {
			swapIter(a, b)
		}
	}
}

func insertionSort[T any](first, last Iterator[T], cmp func(a, b T) int) {
	if !first.Less(last) {
		return
	}

	for i := first.Next(); i.Less(last); i = i.Next() {
		for j := i; first.Less(j); j = j.Prev() {
			prev := j.Prev()
			if cmp(j.get(), prev.get()) >= 0 {
				break
			}
			swapIter(j, prev)
		}
	}
}

// heapSort 对从 first 开始的 n 个元素堆排序.
func heapSort[T any](first Iterator[T], n int, cmp func(a, b T) int) {
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(first, i, n, cmp)
	}
	for end := n - 1; end > 0; end-- {
		swapIter(first, first.Add(end))
		siftDown(first, 0, end, cmp)
	}
}

func siftDown[T any](first Iterator[T], root, n int, cmp func(a, b T) int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && cmp(first.Add(child).get(), first.Add(child+1).get()) < 0 {
			child++
		}

		r, c := first.Add(root), first.Add(child)
		if cmp(r.get(), c.get()) >= 0 {
			return
		}
		swapIter(r, c)
		root = child
	}
}

func swapIter[T any](a, b Iterator[T]) {
	va := a.get()
	a.put(b.get())
	b.put(va)
}
