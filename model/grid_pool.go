package model

import "sync"

// BufferToPool returns a buffer to the pool for reuse
func BufferToPool[B any](pool *BufferPool[B], buf B, size int) {
	if pool == nil {
		return
	}

	pool.Put(buf, size)
}

type pooledBuffer[B any] struct {
	buf  B
	size int
}

// BufferPool recycles grid buffers of one encoding between runs
type BufferPool[B any] struct {
	enc  Encoding[B]
	pool sync.Pool
}

func NewBufferPool[B any](enc Encoding[B]) *BufferPool[B] {
	return &BufferPool[B]{enc: enc}
}

// Get retrieves a cleared buffer for a size×size grid, allocating when the pool holds none of that size
func (p *BufferPool[B]) Get(size int) B {
	if item, ok := p.pool.Get().(*pooledBuffer[B]); ok {
		if item.size == size {
			p.enc.Clear(item.buf, size)
			return item.buf
		}
	}
	return p.enc.Alloc(size)
}

// Put hands a buffer back to the pool
func (p *BufferPool[B]) Put(buf B, size int) {
	p.pool.Put(&pooledBuffer[B]{buf: buf, size: size})
}
