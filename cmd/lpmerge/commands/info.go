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

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/lightplacer/lpmerge/placer"
	"github.com/opencontainers/go-digest"
	"github.com/urfave/cli/v3"
)

type documentSummary struct {
	Path          string         `json:"path"`
	Digest        string         `json:"digest"`
	Size          int64          `json:"size"`
	AddonNodes    int            `json:"addonNodes"`
	Meshes        int            `json:"meshes"`
	VisualEffects int            `json:"visualEffects"`
	Entries       int            `json:"entries"`
	Lights        int            `json:"lights"`
	Flags         map[string]int `json:"flags"`
}

// InfoCommand summarizes a document: entry counts per category, light count
// and flag usage.
var InfoCommand = &cli.Command{
	Name:      "info",
	Usage:     "display a document summary",
	ArgsUsage: "<document>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "output in JSON format",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.Args().First()
		if path == "" {
			return errors.New("a document needs to be specified")
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to open document file: %w", err)
		}
		doc, err := placer.DecodeDocument(bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("failed to load document %q: %w", path, err)
		}

		summary := documentSummary{
			Path:          path,
			Digest:        digest.FromBytes(raw).String(),
			Size:          int64(len(raw)),
			AddonNodes:    len(doc.AddonNodes),
			Meshes:        len(doc.Meshes),
			VisualEffects: len(doc.VisualEffects),
			Entries:       doc.Entries(),
			Flags:         map[string]int{},
		}
		err = placer.WalkLights(doc, func(light map[string]any) error {
			summary.Lights++
			for _, name := range lightFlagNames(light) {
				if f, err := placer.ParseFlag(name); err == nil {
					name = string(f)
				}
				summary.Flags[name]++
			}
			return nil
		})
		if err != nil {
			return err
		}

		if cmd.Bool("json") {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		fmt.Printf("Path:            %s\n", summary.Path)
		fmt.Printf("Digest:          %s\n", summary.Digest)
		fmt.Printf("Size:            %d\n", summary.Size)
		fmt.Printf("Addon nodes:     %d\n", summary.AddonNodes)
		fmt.Printf("Meshes:          %d\n", summary.Meshes)
		fmt.Printf("Visual effects:  %d\n", summary.VisualEffects)
		fmt.Printf("Entries:         %d\n", summary.Entries)
		fmt.Printf("Lights:          %d\n", summary.Lights)

		if len(summary.Flags) > 0 {
			fmt.Println("Flags:")
			names := make([]string, 0, len(summary.Flags))
			for name := range summary.Flags {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %s: %d\n", name, summary.Flags[name])
			}
		}
		return nil
	},
}

// lightFlagNames reads the flag names of a light entry in either wire shape.
func lightFlagNames(light map[string]any) []string {
	switch flags := light["flags"].(type) {
	case string:
		return placer.SplitFlagList(flags)
	case []any:
		var names []string
		for _, item := range flags {
			if name, ok := item.(string); ok {
				names = append(names, name)
			}
		}
		return names
	}
	return nil
}
