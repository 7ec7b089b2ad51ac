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
	"dirpx.dev/dhaiku/code"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
type Option func(*builder)

// WithHTTPDefault replaces the library default HTTP status for c.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault replaces the library default gRPC status for c.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride forces the HTTP status for c regardless of reason.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride forces the gRPC status for c regardless of reason.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPReason sets the HTTP status for the exact pair (c, r). The reason
// is normalized, so "ERRNO/EAGAIN" and "errno.eagain" are the same rule.
func WithHTTPReason(c code.Code, r string, http int) Option {
	return func(b *builder) { b.httpReasons = append(b.httpReasons, reasonRule{c, r, http}) }
}

// WithGRPCReason sets the gRPC status for the exact pair (c, r).
func WithGRPCReason(c code.Code, r string, grpc int) Option {
	return func(b *builder) { b.grpcReasons = append(b.grpcReasons, reasonRule{c, r, grpc}) }
}

// WithFallback sets the statuses used for codes without any rule.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
