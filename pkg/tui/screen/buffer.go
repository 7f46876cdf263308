// ABOUTME: Pooled frame buffers for screen rendering; recycled via sync.Pool
// ABOUTME: A frame is assembled in one buffer so it reaches the terminal in one write

package screen

import (
	"bytes"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

// acquireBuffer gets an empty buffer from the pool.
func acquireBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// releaseBuffer returns buf to the pool.
func releaseBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
