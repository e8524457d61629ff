/*
   Copyright The Lpmerge Authors.

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

package placer

import (
	"errors"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/google/go-cmp/cmp"
)

func TestParseFlag(t *testing.T) {
	for _, test := range []struct {
		name      string
		input     string
		expected  Flag
		expectErr bool
	}{
		{name: "canonical", input: "Shadow", expected: FlagShadow},
		{name: "lowercase", input: "shadow", expected: FlagShadow},
		{name: "uppercase", input: "SHADOW", expected: FlagShadow},
		{name: "mixed case", input: "updateOnCellTransition", expected: FlagUpdateOnCellTransition},
		{name: "surrounding spaces", input: " Simple ", expected: FlagSimple},
		{name: "unknown", input: "Glow", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			f, err := ParseFlag(test.input)
			if test.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got %q", f)
				}
				if !errors.Is(err, errdefs.ErrInvalidArgument) {
					t.Fatalf("expected an invalid argument error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f != test.expected {
				t.Fatalf("expected %q, got %q", test.expected, f)
			}
		})
	}
}

func TestParseFlagCoversVocabulary(t *testing.T) {
	for _, known := range KnownFlags() {
		f, err := ParseFlag(string(known))
		if err != nil {
			t.Fatalf("known flag %q failed to parse: %v", known, err)
		}
		if f != known {
			t.Fatalf("known flag %q parsed to %q", known, f)
		}
	}
}

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags([]string{"shadow", "Simple", "SHADOW", "simple", "IgnoreScale"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []Flag{FlagShadow, FlagSimple, FlagIgnoreScale}
	if diff := cmp.Diff(flags, expected); diff != "" {
		t.Fatalf("unexpected flags; diff = %v", diff)
	}

	if _, err := ParseFlags([]string{"Shadow", "Glow"}); err == nil {
		t.Fatal("expected an error for an unknown name")
	}
}

func TestSplitJoinFlagList(t *testing.T) {
	for _, test := range []struct {
		name  string
		list  string
		names []string
	}{
		{name: "empty", list: "", names: nil},
		{name: "single", list: "Shadow", names: []string{"Shadow"}},
		{name: "many", list: "Shadow|Simple|IgnoreScale", names: []string{"Shadow", "Simple", "IgnoreScale"}},
		{name: "odd spelling preserved", list: "shadow| Simple", names: []string{"shadow", " Simple"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			names := SplitFlagList(test.list)
			if diff := cmp.Diff(names, test.names); diff != "" {
				t.Fatalf("unexpected names; diff = %v", diff)
			}
			if joined := JoinFlagList(names); joined != test.list {
				t.Fatalf("join does not round-trip: %q != %q", joined, test.list)
			}
		})
	}
}

func TestParseInterpolation(t *testing.T) {
	for _, test := range []struct {
		input     string
		expected  Interpolation
		expectErr bool
	}{
		{input: "Cubic", expected: InterpolationCubic},
		{input: "linear", expected: InterpolationLinear},
		{input: "STEP", expected: InterpolationStep},
		{input: "bezier", expectErr: true},
		{input: "", expectErr: true},
	} {
		t.Run(test.input, func(t *testing.T) {
			mode, err := ParseInterpolation(test.input)
			if test.expectErr {
				if err == nil {
					t.Fatalf("expected an error, got %q", mode)
				}
				if !errors.Is(err, errdefs.ErrInvalidArgument) {
					t.Fatalf("expected an invalid argument error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mode != test.expected {
				t.Fatalf("expected %q, got %q", test.expected, mode)
			}
		})
	}
}
