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

// Merge combines documents into a single document. Documents are given in
// priority order: the first document that defines an entry key within a
// category supplies that entry in full, and later documents never override
// it, not even partially. Later documents still contribute every key the
// earlier ones lack, so the result carries the union of keys per category.
//
// The result is built from deep copies and shares no structure with the
// inputs. Nil documents and missing containers read as empty; merging no
// documents yields an empty document.
func Merge(docs []*Document) *Document {
	merged := NewDocument()
	for _, category := range Categories {
		dst := merged.Container(category)
		for _, doc := range docs {
			if doc == nil {
				continue
			}
			for key, value := range doc.Container(category) {
				if _, ok := dst[key]; ok {
					continue
				}
				dst[key] = cloneValue(value)
			}
		}
	}
	return merged
}

// cloneValue deep-copies a decoded JSON tree. Scalars (string, bool,
// json.Number, nil) are immutable and carried over as-is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			out[key] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
