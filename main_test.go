package rawuri_test

import (
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/ghettovoice/rawuri"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				u, err := rawuri.Parse("abc://user@host:123/path?query#frag")
				if err != nil {
					t.Error(err)
					return
				}
				if got := u.String(); got != "abc://user@host:123/path?query#frag" {
					t.Errorf("String() = %q", got)
					return
				}
				dec, err := rawuri.Unescape(rawuri.Escape("hello world"))
				if err != nil {
					t.Error(err)
					return
				}
				if dec != "hello world" {
					t.Errorf("round trip = %q", dec)
					return
				}
			}
		}()
	}
	wg.Wait()
}
