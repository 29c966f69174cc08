// Package log provides logging utilities for the example programs and
// debugging. The library itself never logs.
package log

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/rawuri"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u rawuri.URI) slog.Value {
		attrs := []slog.Attr{
			slog.String("scheme", u.Scheme()),
			slog.String("path", u.Path()),
		}
		if v, ok := u.Authority(); ok {
			attrs = append(attrs, slog.String("authority", v))
		}
		if v, ok := u.Userinfo(); ok {
			attrs = append(attrs, slog.String("userinfo", v))
		}
		if v, ok := u.Host(); ok {
			attrs = append(attrs, slog.String("host", v))
		}
		if v, ok := u.Port(); ok {
			attrs = append(attrs, slog.String("port", v))
		}
		if v, ok := u.Query(); ok {
			attrs = append(attrs, slog.String("query", v))
		}
		if v, ok := u.Fragment(); ok {
			attrs = append(attrs, slog.String("fragment", v))
		}
		return slog.GroupValue(attrs...)
	}),
)

// New returns a logger that applies the module's value formatters on top of
// the given handler.
func New(h slog.Handler) *slog.Logger { return slog.New(newHandler(h)) }

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
