// Package jsonlutil streams values as JSON Lines from a channel.
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Start spins up a goroutine that writes wire(v) as one JSON line for every
// v sent on the returned channel. The error channel yields once, after the
// input is closed. Errors matching isBroken are reported as success.
// After an encode error the goroutine keeps draining in until it is closed.
func Start[T, W any](out io.Writer, bufSize int, wire func(T) W, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue
			}
			err = enc.Encode(wire(v))
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
