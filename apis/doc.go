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

// Package apis holds the small contracts shared by the dhaiku transport
// adapters: the status Mapper, the serializable View of a haiku error and
// the interfaces an error implements to expose its theme code and reason.
//
// It has no dependency on the concrete error type, so adapters and user
// code can target it without importing the root package.
package apis
