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
	"net/http"
	"sync"
	"testing"

	"dirpx.dev/dhaiku/apis"
	"dirpx.dev/dhaiku/code"
	"dirpx.dev/dhaiku/reason"
	"google.golang.org/grpc/codes"
)

func TestDefaults_Basic(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c, reason.Empty)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.NotFound, 404, codes.NotFound)
	check(code.PermissionDenied, 403, codes.PermissionDenied)
	check(code.Invalid, 400, codes.InvalidArgument)
	check(code.NetworkDown, 503, codes.Unavailable)
	check(code.Generic, 500, codes.Unknown)
}

func TestDefaults_CoverEveryTheme(t *testing.T) {
	all := []code.Code{
		code.NetworkDown, code.RadioKilled, code.HostDown, code.BrokenPipe,
		code.ResourceExhausted, code.OutOfMemory, code.OutOfSpace, code.MessageTooLarge,
		code.NotFound, code.OwnerDead, code.Corrupted, code.HardwarePoisoned,
		code.DeviceError, code.Fault, code.LinkLoop, code.NoChildren,
		code.Invalid, code.Deadlock, code.BadMessage, code.Interrupted,
		code.PermissionDenied, code.NotPermitted, code.Generic,
	}
	for _, c := range all {
		if _, ok := defaultHTTP[c]; !ok {
			t.Fatalf("no HTTP default for %q", c)
		}
		if _, ok := defaultGRPC[c]; !ok {
			t.Fatalf("no gRPC default for %q", c)
		}
	}
}

func TestPriority_OverrideOverReasonOverDefault(t *testing.T) {
	eagain := reason.MustFromErrno("EAGAIN")
	m, err := New(
		WithHTTPDefault(code.ResourceExhausted, 503),
		WithHTTPReason(code.ResourceExhausted, "errno.eagain", 429),
		WithGRPCReason(code.ResourceExhausted, "errno.eagain", int(codes.Unavailable)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.ResourceExhausted, eagain)
	if st.HTTP != 429 || st.GRPC != codes.Unavailable {
		t.Fatalf("reason rule must beat default; got %+v", st)
	}
	if st := m.Status(code.ResourceExhausted, reason.MustFromErrno("EMFILE")); st.HTTP != 503 {
		t.Fatalf("other reasons use the default; got %d", st.HTTP)
	}
	// the rule is bound to its code
	if st := m.Status(code.OutOfSpace, eagain); st.HTTP != http.StatusInsufficientStorage {
		t.Fatalf("reason rule leaked to another code; got %d", st.HTTP)
	}

	m2, err := New(
		WithHTTPReason(code.ResourceExhausted, "errno.eagain", 429),
		WithHTTPOverride(code.ResourceExhausted, 418),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m2.Status(code.ResourceExhausted, eagain); st.HTTP != 418 {
		t.Fatalf("override must win; got %d", st.HTTP)
	}
}

func TestReasonNormalization(t *testing.T) {
	m, err := New(WithHTTPReason(code.ResourceExhausted, "  ERRNO/EAGAIN ", 429))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(code.ResourceExhausted, reason.MustFromErrno("EAGAIN")); st.HTTP != 429 {
		t.Fatalf("normalized reason should match; got %d", st.HTTP)
	}
}

func TestFallback(t *testing.T) {
	unknown := code.MustParse("unmapped_theme")
	m, err := New(WithFallback(599, codes.DataLoss))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(unknown, reason.Empty)
	if st.HTTP != 599 || st.GRPC != codes.DataLoss {
		t.Fatalf("fallback = %+v", st)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"bad reason", WithHTTPReason(code.NotFound, "errno..enoent", 404), reason.ErrReasonInvalidFormat},
		{"empty reason", WithGRPCReason(code.NotFound, "  ", int(codes.NotFound)), ErrEmptyReason},
		{"bad override code", WithHTTPOverride("X", 500), code.ErrCodeInvalid},
		{"bad reason code", WithHTTPReason("X", "errno.enoent", 404), code.ErrCodeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); !errors.Is(err, tt.want) {
				t.Fatalf("New error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustNew should panic on invalid options")
		}
	}()
	_ = MustNew(WithHTTPDefault("X", 500))
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m := MustNew(WithHTTPReason(code.ResourceExhausted, "errno.eagain", 429))
	eagain := reason.MustFromErrno("EAGAIN")
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(code.ResourceExhausted, eagain)
				_ = m.Status(code.Generic, reason.Empty)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m := MustNew()
	r := reason.MustFromErrno("ENOENT")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.NotFound, r)
	}
}

func BenchmarkMapperStatus_ReasonHit(b *testing.B) {
	m := MustNew(WithHTTPReason(code.ResourceExhausted, "errno.eagain", 429))
	r := reason.MustFromErrno("EAGAIN")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.ResourceExhausted, r)
	}
}

func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
