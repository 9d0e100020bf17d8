package queue

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Tsukikage7/ringkit/collections/ringbuffer"
)

type QueueTestSuite struct {
	suite.Suite
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueTestSuite))
}

func (s *QueueTestSuite) TestNew() {
	q := New[int](0)
	s.NotNil(q)
	s.True(q.IsEmpty())
	s.Equal(0, q.Len())
	s.True(q.Begin().Equal(q.End()))
}

func (s *QueueTestSuite) TestFIFO() {
	q := New[string](2)
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	s.Equal(3, q.Len())

	for _, want := range []string{"a", "b", "c"} {
		val, err := q.Dequeue()
		s.NoError(err)
		s.Equal(want, val)
	}
	s.True(q.IsEmpty())
}

func (s *QueueTestSuite) TestDequeueEmpty() {
	q := New[int](0)

	_, err := q.Dequeue()
	s.ErrorIs(err, ringbuffer.ErrEmpty)

	_, err = q.Peek()
	s.ErrorIs(err, ringbuffer.ErrEmpty)
}

func (s *QueueTestSuite) TestPeek() {
	q := New[int](0)
	q.Enqueue(1)
	q.Enqueue(2)

	val, err := q.Peek()
	s.NoError(err)
	s.Equal(1, val)
	s.Equal(2, q.Len())
}

func (s *QueueTestSuite) TestWraparound() {
	q := New[int](4)
	for i := 0; i < 4; i++ {
		q.Enqueue(i)
	}
	q.Dequeue()
	q.Dequeue()
	q.Enqueue(4)
	q.Enqueue(5)

	var result []int
	for v := range q.Values() {
		result = append(result, v)
	}
	s.Equal([]int{2, 3, 4, 5}, result)
	s.Equal("2,3,4,5,", q.ToString(","))
	s.Equal("2 3 4 5 ", q.String())
}

func (s *QueueTestSuite) TestIterate() {
	q := New[int](0)
	q.Enqueue(7)
	q.Enqueue(8)

	var result []int
	for it := q.Begin(); !it.Equal(q.End()); it = it.Next() {
		v, err := it.Value()
		s.Require().NoError(err)
		result = append(result, v)
	}
	s.Equal([]int{7, 8}, result)
}

func (s *QueueTestSuite) TestStats() {
	q := New[int](4)
	for i := 0; i < 4; i++ {
		q.Enqueue(i)
	}
	q.Dequeue()
	q.Enqueue(4)

	stats := q.Stats()
	s.Equal(4, stats.Len)
	s.Equal(4, stats.Cap)
	s.True(stats.Parted)
	s.Equal(0, stats.Grows)
}
