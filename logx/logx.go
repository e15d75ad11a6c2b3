// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger for gltri,
// which writes slog text records to stderr with the level colored
// according to the terminal's capabilities.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level of the default logger.
// It is set by build tag: info by default, debug with -tags debug,
// and warn with -tags release. It can be changed at any point,
// including by [SetLevel].
var UserLevel = defaultUserLevel

// NewHandler returns a new text [slog.Handler] writing to w
// that filters at [UserLevel] and colors the level name.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lvl))
			return a
		},
	})
}

// LevelString returns the name of the given level styled for
// the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	st := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		st = st.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		st = st.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		st = st.Foreground(termenv.ANSICyan)
	default:
		st = st.Faint()
	}
	return st.String()
}

// SetDefault installs a logger using [NewHandler] on stderr
// as the [slog] default.
func SetDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// SetLevel sets [UserLevel] from its name (debug, info, warn, error).
// An empty name leaves the level unchanged.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	lvl, err := parseLevel(name)
	if err != nil {
		return err
	}
	UserLevel = lvl
	return nil
}

// CheckLevel returns an error if the name is not empty and not
// a level that [SetLevel] accepts.
func CheckLevel(name string) error {
	if name == "" {
		return nil
	}
	_, err := parseLevel(name)
	return err
}

func parseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return lvl, fmt.Errorf("logx: unknown log level %q: %w", name, err)
	}
	return lvl, nil
}
