/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dhaiku

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"dirpx.dev/dhaiku/catalog"
	"dirpx.dev/dhaiku/code"
)

// Printer writes haiku to a stream. It is immutable after NewPrinter and
// safe for concurrent use as long as its writer is.
type Printer struct {
	w             io.Writer // nil means os.Stderr at write time
	cat           *catalog.Catalog
	log           *slog.Logger
	systemMessage bool
}

// NewPrinter returns a Printer writing to standard error with the default
// catalog, adjusted by opts.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{
		cat: catalog.Default(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var std = NewPrinter()

// Emit prints a haiku for errno to standard error. A non-empty prefix is
// written before every line, followed by a colon and a space.
func Emit(prefix string, errno syscall.Errno) error {
	return std.Print(prefix, errno)
}

// EmitError prints a haiku for err to standard error. Nothing is printed
// when err denotes no error: nil or a zero errno.
func EmitError(prefix string, err error) error {
	return std.PrintError(prefix, err)
}

// Print writes a haiku for errno. Zero is a valid request and yields a
// generic haiku.
func (p *Printer) Print(prefix string, errno syscall.Errno) error {
	m := p.cat.Lookup(errno)
	var sys string
	if m.Generic && errno != 0 {
		sys = errno.Error()
	}
	return p.write(prefix, m, sys)
}

// PrintError writes a haiku for err. A *Error in the chain is printed with
// its own haiku. Otherwise the errno is taken from err's chain;
// errors without one get a generic haiku. It writes nothing for nil or a
// zero errno, and never modifies err.
func (p *Printer) PrintError(prefix string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		m := catalog.Match{Errno: de.Errno, Code: de.Code, Reason: de.Reason, Haiku: de.Message, Generic: de.Generic}
		return p.write(prefix, m, err.Error())
	}
	errno, ok := ErrnoOf(err)
	if ok && errno == 0 {
		return nil
	}
	m := catalog.Match{Code: code.Generic, Haiku: p.cat.Generic(), Generic: true}
	if ok {
		m = p.cat.Lookup(errno)
	}
	return p.write(prefix, m, err.Error())
}

// Wrap is like the package-level Wrap but uses p's catalog.
func (p *Printer) Wrap(err error) *Error {
	return wrap(p.cat, err)
}

func (p *Printer) write(prefix string, m catalog.Match, sys string) error {
	var b strings.Builder
	if m.Generic && p.systemMessage && prefix != "" && sys != "" {
		b.WriteString(prefix)
		b.WriteString(": ")
		b.WriteString(sys)
		b.WriteByte('\n')
	}
	b.WriteString(Format(prefix, m.Haiku))

	w := p.w
	if w == nil {
		w = os.Stderr
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		p.log.Warn("dhaiku: write failed", slog.String("code", m.Code.String()), slog.Any("error", err))
		return fmt.Errorf("dhaiku: write haiku: %w", err)
	}
	p.log.Debug("dhaiku: haiku printed",
		slog.Int("errno", int(m.Errno)),
		slog.String("code", m.Code.String()),
		slog.Bool("generic", m.Generic),
	)
	return nil
}

// Format prefixes every line of haiku with prefix, a colon and a space.
// An empty prefix returns haiku unchanged.
func Format(prefix, haiku string) string {
	if prefix == "" {
		return haiku
	}
	var b strings.Builder
	for _, line := range strings.SplitAfter(haiku, "\n") {
		if line == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(": ")
		b.WriteString(line)
	}
	return b.String()
}
