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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func light(name string, flags any) []any {
	return []any{
		map[string]any{
			"data": map[string]any{
				"light": name,
				"flags": flags,
			},
		},
	}
}

func TestMerge(t *testing.T) {
	for _, test := range []struct {
		name     string
		docs     []*Document
		expected *Document
	}{
		{
			name:     "no documents",
			docs:     nil,
			expected: NewDocument(),
		},
		{
			name:     "empty documents",
			docs:     []*Document{{}, {}},
			expected: NewDocument(),
		},
		{
			name: "single document is normalized",
			docs: []*Document{
				{AddonNodes: Container{"49": light("LanternLight01", "Shadow")}},
			},
			expected: &Document{
				AddonNodes:    Container{"49": light("LanternLight01", "Shadow")},
				Meshes:        Container{},
				VisualEffects: Container{},
			},
		},
		{
			name: "first document wins per entry key",
			docs: []*Document{
				{AddonNodes: Container{"49": light("UserOverride", "Simple")}},
				{AddonNodes: Container{
					"49": light("BaseLantern", "Shadow"),
					"50": light("BaseCandle", "Simple"),
				}},
			},
			expected: &Document{
				AddonNodes: Container{
					"49": light("UserOverride", "Simple"),
					"50": light("BaseCandle", "Simple"),
				},
				Meshes:        Container{},
				VisualEffects: Container{},
			},
		},
		{
			name: "winning entry replaces wholly, not per field",
			docs: []*Document{
				{Meshes: Container{"lantern01.nif": light("Short", "")}},
				{Meshes: Container{"lantern01.nif": []any{
					map[string]any{"data": map[string]any{"light": "LongA", "flags": ""}},
					map[string]any{"data": map[string]any{"light": "LongB", "flags": ""}},
				}}},
			},
			expected: &Document{
				AddonNodes:    Container{},
				Meshes:        Container{"lantern01.nif": light("Short", "")},
				VisualEffects: Container{},
			},
		},
		{
			name: "categories merge independently",
			docs: []*Document{
				{
					AddonNodes: Container{"49": light("NodeLight", "")},
					Meshes:     Container{"lantern01.nif": light("MeshLight", "")},
				},
				{
					Meshes:        Container{"candle01.nif": light("CandleLight", "")},
					VisualEffects: Container{"fxglow01.nif": light("GlowLight", "")},
				},
			},
			expected: &Document{
				AddonNodes: Container{"49": light("NodeLight", "")},
				Meshes: Container{
					"lantern01.nif": light("MeshLight", ""),
					"candle01.nif":  light("CandleLight", ""),
				},
				VisualEffects: Container{"fxglow01.nif": light("GlowLight", "")},
			},
		},
		{
			name: "priority carries across many documents",
			docs: []*Document{
				{VisualEffects: Container{"a": light("First", "")}},
				{VisualEffects: Container{"a": light("Second", ""), "b": light("Second", "")}},
				{VisualEffects: Container{"b": light("Third", ""), "c": light("Third", "")}},
			},
			expected: &Document{
				AddonNodes: Container{},
				Meshes:     Container{},
				VisualEffects: Container{
					"a": light("First", ""),
					"b": light("Second", ""),
					"c": light("Third", ""),
				},
			},
		},
		{
			name: "nil documents are skipped",
			docs: []*Document{
				nil,
				{AddonNodes: Container{"49": light("NodeLight", "")}},
				nil,
			},
			expected: &Document{
				AddonNodes:    Container{"49": light("NodeLight", "")},
				Meshes:        Container{},
				VisualEffects: Container{},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			merged := Merge(test.docs)
			if diff := cmp.Diff(merged, test.expected); diff != "" {
				t.Fatalf("unexpected merge result; diff = %v", diff)
			}
		})
	}
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	src := &Document{
		Meshes: Container{"lantern01.nif": light("LanternLight01", "Shadow")},
	}
	merged := Merge([]*Document{src})

	data := merged.Meshes["lantern01.nif"].([]any)[0].(map[string]any)["data"].(map[string]any)
	data["flags"] = "Simple"
	data["light"] = "Mutated"

	got := src.Meshes["lantern01.nif"].([]any)[0].(map[string]any)["data"].(map[string]any)
	if got["flags"] != "Shadow" || got["light"] != "LanternLight01" {
		t.Fatalf("mutating the merge result changed an input document: %v", got)
	}
}

func TestMergeLeavesInputsUntouched(t *testing.T) {
	first := &Document{AddonNodes: Container{"49": light("First", "")}}
	second := &Document{AddonNodes: Container{"49": light("Second", ""), "50": light("Second", "")}}
	wantFirst := &Document{AddonNodes: Container{"49": light("First", "")}}
	wantSecond := &Document{AddonNodes: Container{"49": light("Second", ""), "50": light("Second", "")}}

	Merge([]*Document{first, second})

	if diff := cmp.Diff(first, wantFirst); diff != "" {
		t.Fatalf("first input changed; diff = %v", diff)
	}
	if diff := cmp.Diff(second, wantSecond); diff != "" {
		t.Fatalf("second input changed; diff = %v", diff)
	}
}
