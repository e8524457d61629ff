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

// RewriteFlags rewrites the flag set of every light entry in doc, in place,
// and returns doc. The new flag sequence of an entry keeps the surviving
// original flags in their original order and spelling, then appends flags
// from add that are not already present, in the order given. A flag named in
// both add and remove is removed. Flag names match case-insensitively;
// appended flags use their canonical spelling.
//
// The flags value of a light entry may be the pipe-joined wire string
// ("Shadow|Simple") or an array of names; the rewritten value keeps the
// shape it was found in. Flags values of any other shape are left alone.
//
// When add and remove are both empty, doc is returned untouched, every flags
// value byte for byte as it was.
func RewriteFlags(doc *Document, add, remove []Flag) (*Document, error) {
	if doc == nil || (len(add) == 0 && len(remove) == 0) {
		return doc, nil
	}
	removed := flagKeySet(remove)
	err := WalkLights(doc, func(light map[string]any) error {
		rewriteLight(light, add, removed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func rewriteLight(light map[string]any, add []Flag, removed map[string]bool) {
	switch flags := light[flagsKey].(type) {
	case string:
		light[flagsKey] = JoinFlagList(rewriteNames(SplitFlagList(flags), add, removed))
	case []any:
		names, ok := stringSlice(flags)
		if !ok {
			return
		}
		names = rewriteNames(names, add, removed)
		items := make([]any, len(names))
		for i, name := range names {
			items[i] = name
		}
		light[flagsKey] = items
	}
}

// rewriteNames computes the new flag sequence from the existing one.
func rewriteNames(existing []string, add []Flag, removed map[string]bool) []string {
	result := make([]string, 0, len(existing)+len(add))
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		key := flagKey(name)
		if removed[key] {
			continue
		}
		present[key] = true
		result = append(result, name)
	}
	for _, f := range add {
		key := flagKey(string(f))
		if removed[key] || present[key] {
			continue
		}
		present[key] = true
		result = append(result, string(f))
	}
	return result
}

func flagKeySet(flags []Flag) map[string]bool {
	set := make(map[string]bool, len(flags))
	for _, f := range flags {
		set[flagKey(string(f))] = true
	}
	return set
}

// stringSlice unpacks a decoded JSON array whose members are all strings.
func stringSlice(items []any) ([]string, bool) {
	names := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		names[i] = s
	}
	return names, true
}
