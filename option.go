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
	"io"
	"log/slog"

	"dirpx.dev/dhaiku/catalog"
)

// Option is a functional option for NewPrinter.
type Option func(*Printer)

// WithWriter sets the output stream. The default is os.Stderr, resolved at
// write time.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) { p.w = w }
}

// WithCatalog replaces the default catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(p *Printer) {
		if c != nil {
			p.cat = c
		}
	}
}

// WithLogger enables diagnostic logging. A Debug record is emitted per
// haiku and a Warn record per failed write.
func WithLogger(l *slog.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.log = l
		}
	}
}

// WithSystemMessage makes the printer write the conventional one-line
// "prefix: message" before a generic haiku, so unmatched errors still show
// what actually happened. It has no effect without a prefix.
func WithSystemMessage(on bool) Option {
	return func(p *Printer) { p.systemMessage = on }
}
