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
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/dhaiku/code"
	"dirpx.dev/dhaiku/reason"
	"google.golang.org/grpc/codes"
)

var update = flag.Bool("update", false, "update golden files")

// TestExplain_Golden keeps Explain output stable.
// Update golden with: go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPReason(code.ResourceExhausted, "errno.eagain", 429),
		WithGRPCOverride(code.PermissionDenied, int(codes.Unauthenticated)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var b strings.Builder

	// reason rule
	b.WriteString(m.Explain(code.ResourceExhausted, reason.MustFromErrno("EAGAIN")))
	b.WriteString("\n---\n")

	// override next to a default
	b.WriteString(m.Explain(code.PermissionDenied, reason.MustFromErrno("EACCES")))
	b.WriteString("\n---\n")

	// fallback
	b.WriteString(m.Explain(code.MustParse("unknown_theme"), reason.Empty))
	b.WriteString("\n")

	got := b.String()

	goldenPath := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenPath)
		return
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v (run with -update to create)", err)
	}
	want := strings.TrimRight(string(wantBytes), "\n")
	if strings.TrimRight(got, "\n") != want {
		t.Fatalf("Explain golden mismatch.\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}
