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

// Package mapper resolves haiku theme codes (dirpx.dev/dhaiku/code) and
// errno reasons (dirpx.dev/dhaiku/reason) into HTTP and gRPC statuses.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. rule for the exact (code, reason) pair;
//  3. per-code default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal unless changed).
//
// Reasons are errno symbols ("errno.eagain"), so rules match them exactly;
// there is no hierarchy to match prefixes against.
//
// # Library defaults
//
// Every theme code in package code has a default. For example not_found maps
// to 404 / NotFound, permission_denied to 403 / PermissionDenied and generic
// to 500 / Unknown.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPReason(code.ResourceExhausted, "errno.eagain", http.StatusTooManyRequests),
//	)
//	st := m.Status(code.ResourceExhausted, reason.MustFromErrno("EAGAIN"))
//	// st.HTTP == 429, st.GRPC == codes.ResourceExhausted
//
// A Mapper is an immutable snapshot: New copies every input, and the result
// is safe to share across goroutines.
package mapper
