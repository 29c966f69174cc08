package ioutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ghettovoice/rawuri/internal/ioutil"
)

type errorWriter struct {
	failAfter int
	err       error
	num       int
}

func (w *errorWriter) Write(p []byte) (int, error) {
	if w.num+len(p) > w.failAfter {
		n := w.failAfter - w.num
		w.num = w.failAfter
		return n, w.err
	}
	w.num += len(p)
	return len(p), nil
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("abc")
	cw.Write([]byte("://"))
	cw.WriteString("host")

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := len("abc://host"); num != want {
		t.Errorf("cw.Result() num = %d, want %d", num, want)
	}
	if got, want := sb.String(), "abc://host"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
}

func TestCountingWriter_error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("broken pipe")
	w := &errorWriter{failAfter: 4, err: wantErr}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("abc")
	cw.WriteString("://")
	cw.WriteString("never written")

	num, err := cw.Result()
	if !errors.Is(err, wantErr) {
		t.Fatalf("cw.Result() error = %v, want %v", err, wantErr)
	}
	if num != 4 {
		t.Errorf("cw.Result() num = %d, want 4", num)
	}
	if !errors.Is(cw.Err(), wantErr) {
		t.Errorf("cw.Err() = %v, want %v", cw.Err(), wantErr)
	}
}
