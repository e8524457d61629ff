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
	"fmt"
	"sort"
)

const (
	// flagsKey marks a light entry: any object carrying it, at any depth,
	// is visited by WalkLights.
	flagsKey = "flags"

	// Arbitrarily selected based on existing document depth. Limiting
	// recursion depth protects against stack overflows when handling
	// malicious or malformed inputs.
	maxWalkDepth = 50
)

// ErrExceededMaxDepth is returned when a document nests values deeper than
// the traversal allows.
var ErrExceededMaxDepth = fmt.Errorf("exceeded maximum nesting depth of %d", maxWalkDepth)

// WalkLights visits every light entry in doc. A light entry is any object
// carrying a "flags" field, wherever it nests inside a container value.
// Entries are visited in deterministic order: containers in canonical order,
// keys within each object sorted, array elements in place. A parent entry is
// visited before any entry nested inside it. Returning an error from fn
// aborts the walk.
func WalkLights(doc *Document, fn func(light map[string]any) error) error {
	if doc == nil {
		return nil
	}
	for _, category := range Categories {
		container := doc.Container(category)
		for _, key := range sortedKeys(container) {
			if err := walkValue(container[key], fn, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkValue(v any, fn func(light map[string]any) error, depth int) error {
	if depth > maxWalkDepth {
		return ErrExceededMaxDepth
	}
	switch val := v.(type) {
	case map[string]any:
		if _, ok := val[flagsKey]; ok {
			if err := fn(val); err != nil {
				return err
			}
		}
		for _, key := range sortedKeys(val) {
			if err := walkValue(val[key], fn, depth+1); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range val {
			if err := walkValue(item, fn, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
