package model

import "testing"

func TestBufferPoolReturnsClearedBuffers(t *testing.T) {
	enc := Packed{}
	pool := NewBufferPool[[]uint16](enc)

	buf := pool.Get(4)
	if len(buf) != 4 {
		t.Fatalf("len = %d", len(buf))
	}
	buf[2] = 0xf
	BufferToPool(pool, buf, 4)

	// sync.Pool may drop items at any time, so only the contents are checked
	again := pool.Get(4)
	if len(again) != 4 || CountLiving(Bind[[]uint16](enc, again, 4)) != 0 {
		t.Fatalf("pooled buffer not cleared: %v", again)
	}

	pool.Put(again, 4)
	other := pool.Get(6)
	if len(other) != 6 {
		t.Fatalf("len = %d, want 6", len(other))
	}
}

func TestBufferToPoolNil(t *testing.T) {
	BufferToPool[[]uint8](nil, make([]uint8, 4), 2)
}
