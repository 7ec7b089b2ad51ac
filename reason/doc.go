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

// Package reason defines the optional, dotted sub-classification attached to
// a haiku next to its theme code.
//
// In dhaiku a reason names the platform symbol that selected the haiku, in
// the form "errno.<symbol>", for example "errno.enoent" or "errno.eagain".
// Generic haiku carry no reason. Reasons are matched exactly by the transport
// mapper and exported as metadata by the gRPC and HTTP adapters.
package reason
