package http

import (
	"io"
	"time"
)

// readChunk carries one read from the body goroutine.
type readChunk struct {
	data []byte
	err  error
}

// ReadBounded accumulates bytes from r until the stream ends or the
// deadline elapses, whichever comes first. Each loop iteration races the
// next chunk against the timer; a ready chunk is consumed and the race
// re-armed, and only a timer firing with no chunk ready stops the read.
//
// Returns the accumulated bytes plus a truncation flag: deadline elapsed
// means truncated; a read error after at least one byte also means
// truncated (partial value beats total failure); a read error with
// nothing accumulated, or a clean end of stream, means not truncated.
func ReadBounded(r io.Reader, timeout time.Duration) ([]byte, bool) {
	chunks := make(chan readChunk)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			buf := make([]byte, 32*1024)
			n, err := r.Read(buf)
			select {
			case chunks <- readChunk{data: buf[:n], err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var body []byte
	for {
		select {
		case chunk := <-chunks:
			body = append(body, chunk.data...)
			if chunk.err == io.EOF {
				return body, false
			}
			if chunk.err != nil {
				return body, len(body) > 0
			}
		case <-timer.C:
			return body, true
		}
	}
}
