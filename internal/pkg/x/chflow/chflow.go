// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels, and for turning a reader into a channel of lines.
package chflow

import (
	"bufio"
	"context"
	"io"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// ScanLines reads r line by line in a separate goroutine and delivers each
// line on the returned lines channel. Both channels are closed when r is
// exhausted, fails, or ctx is canceled. A read failure, including a line longer
// than bufio.MaxScanTokenSize, is buffered on errs before lines is closed, so
// once lines is observed closed errs can be read without blocking.
func ScanLines(ctx context.Context, r io.Reader) (lines <-chan string, errs <-chan error) {
	out := make(chan string)
	failures := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(failures)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !Send(ctx, out, scanner.Text()) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			failures <- err
		}
	}()

	return out, failures
}
