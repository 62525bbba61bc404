// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package logx is a thin set of colored progress/status printers on top
// of gosl/io's Pf family, matching the "cputime := time.Now()" /
// "io.Pf(...)" reporting pattern in gofem's fem/main.go (spec.md §4.15).
// It exists so cmd/igasf's subcommands share one vocabulary for status
// output (Info/Warn/Done) instead of reaching for io.Pf* ad hoc.
package logx

import "github.com/cpmech/gosl/io"

// Info prints a plain status line
func Info(format string, args ...interface{}) { io.Pf(format, args...) }

// Warn prints a yellow warning line
func Warn(format string, args ...interface{}) { io.Pfyel(format, args...) }

// Error prints a red error line
func Error(format string, args ...interface{}) { io.Pfred(format, args...) }

// Done prints a green success line
func Done(format string, args ...interface{}) { io.Pfgreen(format, args...) }
