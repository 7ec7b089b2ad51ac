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

// Package code defines the theme codes that classify haiku catalog groups.
//
// A code names what went wrong in broad strokes ("not_found", "broken_pipe")
// independent of the platform error number that triggered it. Several errno
// values usually share one code. Codes are:
//
//   - lowercase ASCII, digits and underscores;
//   - 3 to 64 characters long, starting with a letter;
//   - stable, so they can be logged, mapped to transport statuses and
//     matched on by callers.
package code
