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

	"github.com/google/go-cmp/cmp"
)

func taggedLight(tag string) map[string]any {
	return map[string]any{"tag": tag, "flags": ""}
}

func TestWalkLightsOrder(t *testing.T) {
	doc := &Document{
		AddonNodes: Container{
			"50": []any{taggedLight("addon-50")},
			"49": []any{taggedLight("addon-49")},
		},
		Meshes: Container{
			"candle01.nif":  []any{taggedLight("mesh-candle")},
			"lantern01.nif": []any{taggedLight("mesh-lantern-0"), taggedLight("mesh-lantern-1")},
		},
		VisualEffects: Container{
			"fxglow01.nif": []any{taggedLight("effect-glow")},
		},
	}

	var visited []string
	err := WalkLights(doc, func(light map[string]any) error {
		visited = append(visited, light["tag"].(string))
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"addon-49", "addon-50",
		"mesh-candle", "mesh-lantern-0", "mesh-lantern-1",
		"effect-glow",
	}
	if diff := cmp.Diff(visited, expected); diff != "" {
		t.Fatalf("unexpected visit order; diff = %v", diff)
	}
}

func TestWalkLightsVisitsNestedEntries(t *testing.T) {
	inner := taggedLight("inner")
	outer := taggedLight("outer")
	outer["variants"] = []any{map[string]any{"night": inner}}
	doc := &Document{Meshes: Container{"lantern01.nif": []any{outer}}}

	var visited []string
	err := WalkLights(doc, func(light map[string]any) error {
		visited = append(visited, light["tag"].(string))
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(visited, []string{"outer", "inner"}); diff != "" {
		t.Fatalf("expected the parent entry before the nested one; diff = %v", diff)
	}
}

func TestWalkLightsAborts(t *testing.T) {
	doc := &Document{
		Meshes: Container{
			"a.nif": []any{taggedLight("a")},
			"b.nif": []any{taggedLight("b")},
		},
	}
	boom := errors.New("boom")
	visited := 0
	err := WalkLights(doc, func(map[string]any) error {
		visited++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the callback error back, got %v", err)
	}
	if visited != 1 {
		t.Fatalf("expected the walk to stop after the first entry, visited %d", visited)
	}
}

func TestWalkLightsDepthLimit(t *testing.T) {
	deep := any(map[string]any{"flags": ""})
	for i := 0; i < maxWalkDepth+10; i++ {
		deep = []any{deep}
	}
	doc := &Document{Meshes: Container{"deep.nif": deep}}

	err := WalkLights(doc, func(map[string]any) error { return nil })
	if !errors.Is(err, ErrExceededMaxDepth) {
		t.Fatalf("expected ErrExceededMaxDepth, got %v", err)
	}
}

func TestWalkLightsNilDocument(t *testing.T) {
	err := WalkLights(nil, func(map[string]any) error {
		t.Fatal("callback must not run on a nil document")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWalkLightsSkipsScalarValues(t *testing.T) {
	doc := &Document{
		Meshes: Container{
			"note":         "not a light entry",
			"lantern.nif":  []any{taggedLight("lantern")},
			"empty":        []any{},
			"unrelatedMap": map[string]any{"data": "no flags here"},
		},
	}
	var visited []string
	err := WalkLights(doc, func(light map[string]any) error {
		visited = append(visited, light["tag"].(string))
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(visited, []string{"lantern"}); diff != "" {
		t.Fatalf("unexpected entries visited; diff = %v", diff)
	}
}
