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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/containerd/errdefs"
	"github.com/hashicorp/go-multierror"
)

// Validate checks doc against the canonical Light Placer document shape:
// container entries are light lists, addon node keys are numeric IDs, flags
// parse against the vocabulary, shadow settings are paired, and placement
// points are well-formed. All findings are reported together; a nil error
// means the document is clean. The document is never modified.
//
// Merge and RewriteFlags do not depend on any of this. Validate is for
// catching documents Light Placer itself would reject.
func Validate(doc *Document) error {
	if doc == nil {
		return nil
	}
	var errs *multierror.Error
	for _, category := range Categories {
		container := doc.Container(category)
		for _, key := range sortedKeys(container) {
			if category == CategoryAddonNodes {
				if _, err := strconv.ParseInt(key, 10, 64); err != nil {
					errs = multierror.Append(errs, invalidf("%s[%q]: key is not a numeric node ID", category, key))
				}
			}
			errs = multierror.Append(errs, validateEntry(category, key, container[key])...)
		}
	}
	return errs.ErrorOrNil()
}

func validateEntry(category Category, key string, value any) []error {
	lights, ok := value.([]any)
	if !ok {
		return []error{invalidf("%s[%q]: entry is not a light list", category, key)}
	}
	var errs []error
	for i, item := range lights {
		errs = append(errs, validateLight(category, key, i, item)...)
	}
	return errs
}

func validateLight(category Category, key string, index int, item any) []error {
	at := fmt.Sprintf("%s[%q]: lights[%d]", category, key, index)
	light, ok := item.(map[string]any)
	if !ok {
		return []error{invalidf("%s: light is not an object", at)}
	}

	var errs []error
	if data, ok := light["data"].(map[string]any); ok {
		errs = append(errs, validateData(at, data)...)
	} else {
		errs = append(errs, invalidf("%s: missing 'data' object", at))
	}

	points, hasPoints := light["points"]
	_, hasNodes := light["nodes"]
	if category == CategoryMeshes && !hasPoints && !hasNodes {
		errs = append(errs, invalidf("%s: mesh lights need 'points' or 'nodes'", at))
	}
	if hasPoints {
		errs = append(errs, validatePoints(at, points)...)
	}
	return errs
}

func validatePoints(at string, value any) []error {
	points, ok := value.([]any)
	if !ok {
		return []error{invalidf("%s: 'points' is not a list", at)}
	}
	var errs []error
	for i, point := range points {
		if !isPosition(point) {
			errs = append(errs, invalidf("%s: points[%d] is not a 3-component position", at, i))
		}
	}
	return errs
}

// isPosition reports whether v is a [x, y, z] numeric triple.
func isPosition(v any) bool {
	triple, ok := v.([]any)
	if !ok || len(triple) != 3 {
		return false
	}
	for _, c := range triple {
		switch c.(type) {
		case json.Number, float64, int, int64:
		default:
			return false
		}
	}
	return true
}

func validateData(at string, data map[string]any) []error {
	var errs []error
	if name, _ := data["light"].(string); name == "" {
		errs = append(errs, invalidf("%s: 'data.light' is missing or empty", at))
	}

	names, flagErrs := dataFlags(at, data)
	errs = append(errs, flagErrs...)

	_, hasBias := data["shadowDepthBias"]
	hasShadow := containsFlagName(names, FlagShadow)
	if hasShadow && !hasBias {
		errs = append(errs, invalidf("%s: %q flag set without 'shadowDepthBias'", at, FlagShadow))
	} else if hasBias && !hasShadow {
		errs = append(errs, invalidf("%s: 'shadowDepthBias' set without %q flag", at, FlagShadow))
	}

	for _, controller := range []string{"colorController", "radiusController", "fadeController"} {
		c, ok := data[controller].(map[string]any)
		if !ok {
			continue
		}
		name, ok := c["interpolation"].(string)
		if !ok {
			errs = append(errs, invalidf("%s: %s is missing 'interpolation'", at, controller))
			continue
		}
		if _, err := ParseInterpolation(name); err != nil {
			errs = append(errs, invalidf("%s: %s interpolation %q is not one of Cubic, Linear, Step", at, controller, name))
		}
	}
	return errs
}

// dataFlags extracts the flag names of a light, in either wire shape, and
// reports names outside the vocabulary.
func dataFlags(at string, data map[string]any) ([]string, []error) {
	raw, ok := data[flagsKey]
	if !ok {
		return nil, nil
	}
	var names []string
	switch flags := raw.(type) {
	case string:
		names = SplitFlagList(flags)
	case []any:
		var ok bool
		if names, ok = stringSlice(flags); !ok {
			return nil, []error{invalidf("%s: 'flags' members must be strings", at)}
		}
	default:
		return nil, []error{invalidf("%s: 'flags' must be a list or a %q-joined string", at, flagSeparator)}
	}
	var errs []error
	for _, name := range names {
		if _, err := ParseFlag(name); err != nil {
			errs = append(errs, invalidf("%s: unrecognized flag %q", at, name))
		}
	}
	return names, errs
}

func containsFlagName(names []string, f Flag) bool {
	for _, name := range names {
		if flagKey(name) == flagKey(string(f)) {
			return true
		}
	}
	return false
}

// invalidf builds a validation finding wrapping errdefs.ErrInvalidArgument.
func invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, errdefs.ErrInvalidArgument)...)
}
