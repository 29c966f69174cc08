package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/rawuri"
	"github.com/ghettovoice/rawuri/internal/log"
)

func TestNew_uriFormatter(t *testing.T) {
	t.Parallel()

	u, err := rawuri.Parse("abc://user@host:123/path?q#f")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger := log.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
	logger.Info("parsed", "uri", u)

	out := buf.String()
	for _, want := range []string{
		"uri.scheme=abc",
		"uri.authority=user@host:123",
		"uri.userinfo=user",
		"uri.host=host",
		"uri.port=123",
		"uri.path=path",
		"uri.query=q",
		"uri.fragment=f",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("noop logger reports enabled, want disabled")
	}
}
