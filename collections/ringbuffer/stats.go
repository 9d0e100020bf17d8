package ringbuffer

// Stats 缓冲区状态快照.
type Stats struct {
	Len    int
	Cap    int
	Parted bool
	Grows  int // 底层数组重新分配的次数
}

// Stats 返回当前状态快照.
func (rb *RingBuffer[T]) Stats() Stats {
	return Stats{
		Len:    rb.size,
		Cap:    len(rb.buf),
		Parted: rb.IsParted(),
		Grows:  rb.grows,
	}
}
