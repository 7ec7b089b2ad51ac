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

// View is the serializable form of a haiku error, safe to send to clients.
type View struct {
	// Code is the theme code, e.g. "not_found" or "generic".
	Code string `json:"code"`

	// Reason is the errno reason, e.g. "errno.enoent". Empty for generic
	// haiku.
	Reason string `json:"reason,omitempty"`

	// Errno is the platform error number, 0 when none was found.
	Errno int `json:"errno,omitempty"`

	// Message is the haiku as one string.
	Message string `json:"message"`

	// Lines is the haiku split into its lines, without newlines.
	Lines []string `json:"lines"`

	// Generic reports a fallback haiku.
	Generic bool `json:"generic,omitempty"`

	// HTTPStatus and GRPCCode are the resolved transport statuses.
	HTTPStatus int `json:"http_status,omitempty"`
	GRPCCode   int `json:"grpc_code,omitempty"`
}
