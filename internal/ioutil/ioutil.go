// Package ioutil provides small io.Writer helpers for RenderTo
// implementations.
package ioutil

//go:generate errtrace -w .

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an io.Writer and tracks the total number of bytes
// written. After the first write error it becomes a no-op and keeps
// reporting that error, so render code can chain writes without checking
// each one.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = cw.w.Write(p)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
		return n, cw.err
	}
	return n, nil
}

// WriteString writes a string and tracks bytes written.
func (cw *CountingWriter) WriteString(s string) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = io.WriteString(cw.w, s)
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
		return n, cw.err
	}
	return n, nil
}

// Result returns the total number of bytes written and any error
// encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Err returns any error that occurred during writing.
func (cw *CountingWriter) Err() error {
	return errtrace.Wrap(cw.err)
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

// GetCountingWriter returns a pooled CountingWriter wrapping w.
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

// FreeCountingWriter resets cw and returns it to the pool.
func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
