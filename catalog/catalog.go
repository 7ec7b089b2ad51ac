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

// Package catalog maps platform error numbers to haiku.
//
// A Catalog is built once from a table of groups. Each group (Entry) binds
// one or more errno symbols, such as "ENOENT", to a non-empty list of
// candidate haiku. Symbols the current platform does not define are skipped,
// and when two symbols share one numeric value the first group to claim the
// value keeps it, so a single errno never matches twice.
//
// Lookup never fails: an errno with no group, including zero, gets one of the
// generic haiku. Selection among candidates is uniform.
//
// A Catalog is immutable and safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"strings"
	"sync"
	"syscall"

	"dirpx.dev/dhaiku/code"
	"dirpx.dev/dhaiku/internal/pick"
	"dirpx.dev/dhaiku/reason"
)

var (
	// ErrEmptyGroup is returned for an entry without haiku or without symbols.
	ErrEmptyGroup = errors.New("dhaiku: catalog group is empty")

	// ErrEmptyGeneric is returned when no generic haiku are supplied.
	ErrEmptyGeneric = errors.New("dhaiku: no generic haiku")

	// ErrMalformedHaiku is returned for a haiku that is not exactly three
	// non-empty, newline-terminated lines.
	ErrMalformedHaiku = errors.New("dhaiku: malformed haiku")
)

// Lines is the number of lines in every haiku.
const Lines = 3

// Entry is one catalog group.
type Entry struct {
	// Code is the theme shared by every symbol of the group.
	Code code.Code

	// Symbols are errno names, e.g. "EAGAIN". Unknown names are ignored.
	Symbols []string

	// Haiku are the candidates. Each is three newline-terminated lines.
	Haiku []string
}

// Match is the result of a lookup.
type Match struct {
	Errno   syscall.Errno
	Code    code.Code
	Reason  reason.Reason // Empty for generic matches.
	Haiku   string
	Generic bool
}

// Option configures New.
type Option func(*options)

type options struct {
	sel     *pick.Selector
	symbols map[string]syscall.Errno
}

// WithSource makes the catalog draw from src instead of the lazily seeded
// process-wide source.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.sel = pick.New(src) }
}

// WithSymbols replaces the platform symbol table. Mostly useful in tests.
func WithSymbols(m map[string]syscall.Errno) Option {
	return func(o *options) { o.symbols = maps.Clone(m) }
}

type binding struct {
	entry  int
	reason reason.Reason
}

// Catalog is an immutable errno to haiku table.
type Catalog struct {
	entries []Entry
	generic []string
	byErrno map[syscall.Errno]binding
	sel     *pick.Selector
}

// New validates entries and generic and freezes them into a Catalog.
// All inputs are copied.
func New(entries []Entry, generic []string, opts ...Option) (*Catalog, error) {
	o := options{sel: pick.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.symbols == nil {
		o.symbols = platformSymbols()
	}

	if len(generic) == 0 {
		return nil, ErrEmptyGeneric
	}
	for i, h := range generic {
		if err := CheckHaiku(h); err != nil {
			return nil, fmt.Errorf("catalog: generic haiku %d: %w", i, err)
		}
	}

	c := &Catalog{
		entries: cloneEntries(entries),
		generic: append([]string(nil), generic...),
		byErrno: make(map[syscall.Errno]binding),
		sel:     o.sel,
	}
	for i, e := range c.entries {
		if err := code.Validate(e.Code); err != nil {
			return nil, fmt.Errorf("catalog: entry %d: %w", i, err)
		}
		if len(e.Haiku) == 0 || len(e.Symbols) == 0 {
			return nil, fmt.Errorf("catalog: entry %d (%s): %w", i, e.Code, ErrEmptyGroup)
		}
		for j, h := range e.Haiku {
			if err := CheckHaiku(h); err != nil {
				return nil, fmt.Errorf("catalog: entry %d (%s) haiku %d: %w", i, e.Code, j, err)
			}
		}
		for _, sym := range e.Symbols {
			r, err := reason.FromErrno(sym)
			if err != nil {
				return nil, fmt.Errorf("catalog: entry %d (%s) symbol %q: %w", i, e.Code, sym, err)
			}
			errno, ok := o.symbols[sym]
			if !ok || errno == 0 {
				continue
			}
			if _, taken := c.byErrno[errno]; taken {
				continue
			}
			c.byErrno[errno] = binding{entry: i, reason: r}
		}
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(entries []Entry, generic []string, opts ...Option) *Catalog {
	c, err := New(entries, generic, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustNew(builtin, generic)
})

// Default returns the builtin catalog for the current platform.
func Default() *Catalog {
	return defaultCatalog()
}

// Symbols returns the errno symbols the current platform defines.
func Symbols() map[string]syscall.Errno {
	return platformSymbols()
}

// Lookup selects a haiku for errno.
func (c *Catalog) Lookup(errno syscall.Errno) Match {
	b, ok := c.byErrno[errno]
	if !ok {
		return Match{Errno: errno, Code: code.Generic, Haiku: c.Generic(), Generic: true}
	}
	e := c.entries[b.entry]
	return Match{Errno: errno, Code: e.Code, Reason: b.reason, Haiku: c.pick(e.Haiku)}
}

// Generic selects one of the generic haiku.
func (c *Catalog) Generic() string {
	return c.pick(c.generic)
}

// Has reports whether errno belongs to a group.
func (c *Catalog) Has(errno syscall.Errno) bool {
	_, ok := c.byErrno[errno]
	return ok
}

// Candidates returns a copy of the haiku Lookup chooses from for errno.
func (c *Catalog) Candidates(errno syscall.Errno) []string {
	if b, ok := c.byErrno[errno]; ok {
		return append([]string(nil), c.entries[b.entry].Haiku...)
	}
	return append([]string(nil), c.generic...)
}

// Entries returns a copy of the catalog's groups.
func (c *Catalog) Entries() []Entry {
	return cloneEntries(c.entries)
}

// pick never sees an empty list: New rejects empty groups.
func (c *Catalog) pick(candidates []string) string {
	h, _ := pick.From(c.sel, candidates)
	return h
}

// CheckHaiku reports ErrMalformedHaiku unless h is exactly three non-empty
// lines, each terminated by a newline.
func CheckHaiku(h string) error {
	parts := strings.Split(h, "\n")
	if len(parts) != Lines+1 || parts[Lines] != "" {
		return ErrMalformedHaiku
	}
	for _, p := range parts[:Lines] {
		if p == "" {
			return ErrMalformedHaiku
		}
	}
	return nil
}

func cloneEntries(src []Entry) []Entry {
	out := make([]Entry, len(src))
	for i, e := range src {
		out[i] = Entry{
			Code:    e.Code,
			Symbols: append([]string(nil), e.Symbols...),
			Haiku:   append([]string(nil), e.Haiku...),
		}
	}
	return out
}
