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

package mapper

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"dirpx.dev/dhaiku/apis"
	"dirpx.dev/dhaiku/code"
	"dirpx.dev/dhaiku/reason"
	"google.golang.org/grpc/codes"
)

// ErrEmptyReason is returned for a reason rule without a reason.
var ErrEmptyReason = errors.New("dhaiku: empty reason in mapper rule")

type pair struct {
	code   code.Code
	reason reason.Reason
}

// New constructs an immutable apis.Mapper snapshot seeded with the library
// defaults and adjusted by opts. It fails on invalid codes or reasons.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	for _, set := range []map[code.Code]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for c := range set {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("mapper: code %q: %w", c, err)
			}
		}
	}

	httpReason, err := compileReasons(b.httpReasons, "HTTP")
	if err != nil {
		return nil, err
	}
	grpcReason, err := compileReasons(b.grpcReasons, "gRPC")
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  maps.Clone(b.httpDefaults),
		grpcDefault:  toGRPC(b.grpcDefaults),
		httpOverride: maps.Clone(b.httpOverride),
		grpcOverride: toGRPC(b.grpcOverride),
		httpReason:   httpReason,
		grpcReason:   toGRPCPairs(grpcReason),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func compileReasons(rules []reasonRule, transport string) (map[pair]int, error) {
	out := make(map[pair]int, len(rules))
	for _, rr := range rules {
		if err := code.Validate(rr.code); err != nil {
			return nil, fmt.Errorf("mapper: %s reason rule for code %q: %w", transport, rr.code, err)
		}
		r, err := reason.Parse(rr.reason)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s reason %q for code %q: %w", transport, rr.reason, rr.code, err)
		}
		if r == reason.Empty {
			return nil, fmt.Errorf("mapper: %s rule for code %q: %w", transport, rr.code, ErrEmptyReason)
		}
		out[pair{rr.code, r}] = rr.val
	}
	return out, nil
}

func toGRPC(src map[code.Code]int) map[code.Code]codes.Code {
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

func toGRPCPairs(src map[pair]int) map[pair]codes.Code {
	dst := make(map[pair]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// mapper is safe for concurrent use once constructed.
type mapper struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	httpReason   map[pair]int
	grpcReason   map[pair]codes.Code
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status: override, reason rule, default,
// fallback.
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _ := m.resolveHTTP(c, r)
	return v
}

// GRPCStatus resolves a gRPC status with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _ := m.resolveGRPC(c, r)
	return v
}

// Status resolves both transports.
func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, r),
		GRPC: m.GRPCStatus(c, r),
	}
}

// Explain renders which tier resolved each transport:
//
//	code="resource_exhausted" reason="errno.eagain"
//	http: source=reason -> 429
//	grpc: source=default -> ResourceExhausted(8)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	hv, hsrc := m.resolveHTTP(c, r)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hv)

	gv, gsrc := m.resolveGRPC(c, r)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", gsrc, gv, int(gv))

	return b.String()
}

func (m *mapper) resolveHTTP(c code.Code, r reason.Reason) (int, string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, "override"
	}
	if r != reason.Empty {
		if v, ok := m.httpReason[pair{c, r}]; ok {
			return v, "reason"
		}
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, "default"
	}
	return m.fallbackHTTP, "fallback"
}

func (m *mapper) resolveGRPC(c code.Code, r reason.Reason) (codes.Code, string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, "override"
	}
	if r != reason.Empty {
		if v, ok := m.grpcReason[pair{c, r}]; ok {
			return v, "reason"
		}
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v, "default"
	}
	return m.fallbackGRPC, "fallback"
}
