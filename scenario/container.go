package scenario

import (
	"slices"

	"github.com/Tsukikage7/ringkit/collections/queue"
	"github.com/Tsukikage7/ringkit/collections/ringbuffer"
	"github.com/Tsukikage7/ringkit/collections/stack"
)

// container 场景可以驱动的目标容器.
type container interface {
	// apply 执行一个步骤，ok 表示该步骤产生了一个元素值
	apply(step Step) (value int, ok bool, err error)
	stats() ringbuffer.Stats
	toString(sep string) string
	sorted() bool
}

func newContainer(target string, capacity int) container {
	switch target {
	case TargetQueue:
		return &queueContainer{q: queue.New[int](capacity)}
	case TargetStack:
		return &stackContainer{s: stack.New[int](capacity)}
	default:
		return &bufferContainer{rb: ringbuffer.New[int](capacity)}
	}
}

type bufferContainer struct {
	rb *ringbuffer.RingBuffer[int]
}

func (c *bufferContainer) apply(step Step) (int, bool, error) {
	switch step.Op {
	case OpPushFront:
		c.rb.PushFront(step.Value)
	case OpPushBack:
		c.rb.PushBack(step.Value)
	case OpPopFront:
		return produced(c.rb.PopFront())
	case OpPopBack:
		return produced(c.rb.PopBack())
	case OpInsert:
		return 0, false, c.rb.Insert(step.Pos, step.Value)
	case OpAt:
		return produced(c.rb.At(step.Pos))
	case OpGrow:
		c.rb.Grow()
	case OpReserve:
		c.rb.Reserve(step.Value)
	case OpClear:
		c.rb.Clear()
	case OpSort:
		ringbuffer.Sort(c.rb)
	case OpReverse:
		c.rb.Reverse()
	}
	return 0, false, nil
}

func (c *bufferContainer) stats() ringbuffer.Stats    { return c.rb.Stats() }
func (c *bufferContainer) toString(sep string) string { return c.rb.ToString(sep) }
func (c *bufferContainer) sorted() bool               { return ringbuffer.IsSorted(c.rb) }

type queueContainer struct {
	q *queue.Queue[int]
}

func (c *queueContainer) apply(step Step) (int, bool, error) {
	switch step.Op {
	case OpEnqueue:
		c.q.Enqueue(step.Value)
	case OpDequeue:
		return produced(c.q.Dequeue())
	}
	return 0, false, nil
}

func (c *queueContainer) stats() ringbuffer.Stats    { return c.q.Stats() }
func (c *queueContainer) toString(sep string) string { return c.q.ToString(sep) }
func (c *queueContainer) sorted() bool               { return slices.IsSorted(slices.Collect(c.q.Values())) }

type stackContainer struct {
	s *stack.Stack[int]
}

func (c *stackContainer) apply(step Step) (int, bool, error) {
	switch step.Op {
	case OpPush:
		c.s.Push(step.Value)
	case OpPop:
		return produced(c.s.Pop())
	}
	return 0, false, nil
}

func (c *stackContainer) stats() ringbuffer.Stats    { return c.s.Stats() }
func (c *stackContainer) toString(sep string) string { return c.s.ToString(sep) }
func (c *stackContainer) sorted() bool               { return slices.IsSorted(slices.Collect(c.s.Values())) }

// produced 把取值类操作的返回转换为 apply 的返回.
func produced(value int, err error) (int, bool, error) {
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}
