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
	"strings"

	"github.com/containerd/errdefs"
)

// Flag is one name from the Light Placer flag vocabulary.
type Flag string

const (
	FlagIgnoreScale            Flag = "IgnoreScale"
	FlagNoExternalEmittance    Flag = "NoExternalEmittance"
	FlagPortalStrict           Flag = "PortalStrict"
	FlagRandomAnimStart        Flag = "RandomAnimStart"
	FlagShadow                 Flag = "Shadow"
	FlagSimple                 Flag = "Simple"
	FlagSyncAddonNodes         Flag = "SyncAddonNodes"
	FlagUpdateOnCellTransition Flag = "UpdateOnCellTransition"
	FlagUpdateOnWaiting        Flag = "UpdateOnWaiting"
)

// KnownFlags returns the vocabulary in canonical order.
func KnownFlags() []Flag {
	return []Flag{
		FlagIgnoreScale,
		FlagNoExternalEmittance,
		FlagPortalStrict,
		FlagRandomAnimStart,
		FlagShadow,
		FlagSimple,
		FlagSyncAddonNodes,
		FlagUpdateOnCellTransition,
		FlagUpdateOnWaiting,
	}
}

var flagNames = func() map[string]Flag {
	names := make(map[string]Flag)
	for _, f := range KnownFlags() {
		names[flagKey(string(f))] = f
	}
	return names
}()

// flagKey normalizes a flag name for membership tests. Light Placer reads
// flag names case-insensitively, so lpmerge matches them the same way.
func flagKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseFlag resolves a case-insensitive flag name to its canonical spelling.
func ParseFlag(name string) (Flag, error) {
	if f, ok := flagNames[flagKey(name)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unrecognized flag %q: %w", name, errdefs.ErrInvalidArgument)
}

// ParseFlags resolves a list of flag names, dropping duplicates while keeping
// first-occurrence order.
func ParseFlags(names []string) ([]Flag, error) {
	flags := make([]Flag, 0, len(names))
	seen := make(map[Flag]bool, len(names))
	for _, name := range names {
		f, err := ParseFlag(name)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		flags = append(flags, f)
	}
	return flags, nil
}

// FlagStrings converts flags back to plain string names.
func FlagStrings(flags []Flag) []string {
	if flags == nil {
		return nil
	}
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = string(f)
	}
	return names
}

// flagSeparator joins flag names in the Light Placer wire syntax
// ("Shadow|Simple").
const flagSeparator = "|"

// SplitFlagList splits a pipe-joined flag list into its names. The empty
// string yields no names.
func SplitFlagList(list string) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, flagSeparator)
}

// JoinFlagList joins names into the pipe-joined wire form.
func JoinFlagList(names []string) string {
	return strings.Join(names, flagSeparator)
}

// Interpolation is a light controller key interpolation mode.
type Interpolation string

const (
	InterpolationCubic  Interpolation = "Cubic"
	InterpolationLinear Interpolation = "Linear"
	InterpolationStep   Interpolation = "Step"
)

// ParseInterpolation resolves a case-insensitive interpolation name to its
// canonical spelling.
func ParseInterpolation(name string) (Interpolation, error) {
	switch flagKey(name) {
	case "cubic":
		return InterpolationCubic, nil
	case "linear":
		return InterpolationLinear, nil
	case "step":
		return InterpolationStep, nil
	}
	return "", fmt.Errorf("unrecognized interpolation %q: %w", name, errdefs.ErrInvalidArgument)
}
