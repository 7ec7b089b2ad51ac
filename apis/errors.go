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

package apis

// CodedError is an error classified by a theme code such as "not_found".
type CodedError interface {
	error

	// ErrorCode returns the canonical theme code.
	ErrorCode() string
}

// ReasonedError is an error that also names the errno symbol behind it.
type ReasonedError interface {
	error

	// ErrorReason returns the reason, e.g. "errno.eagain". May be empty.
	ErrorReason() string
}
