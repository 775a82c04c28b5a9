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

package stack

import (
	"strings"
	"testing"
)

func TestCapture_StartsAtCaller(t *testing.T) {
	tr := Capture(0)
	if len(tr) == 0 {
		t.Fatal("empty trace")
	}
	if !strings.Contains(tr[0].Function, "TestCapture_StartsAtCaller") {
		t.Fatalf("first frame = %v, want this test function", tr[0])
	}
	if tr[0].Line <= 0 || tr[0].File == "" {
		t.Fatalf("unresolved frame: %v", tr[0])
	}
}

func TestCapture_SkipsFrames(t *testing.T) {
	var inner func() Trace
	inner = func() Trace { return Capture(1) }
	tr := inner()
	if len(tr) == 0 {
		t.Fatal("empty trace")
	}
	if !strings.Contains(tr[0].Function, "TestCapture_SkipsFrames") {
		t.Fatalf("first frame = %v, want the test (closure skipped)", tr[0])
	}
}

func TestClone_Independent(t *testing.T) {
	tr := Capture(0)
	cp := tr.Clone()
	cp[0].Line = -1
	if tr[0].Line == -1 {
		t.Fatal("clone aliases original")
	}
	if Trace(nil).Clone() != nil {
		t.Fatal("nil must clone to nil")
	}
}

func TestFrameString(t *testing.T) {
	f := Frame{File: "/src/a.go", Line: 10, Function: "pkg.Fn"}
	if got := f.String(); got != "pkg.Fn (/src/a.go:10)" {
		t.Fatalf("String = %q", got)
	}
}
