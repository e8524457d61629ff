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
	"fmt"
	"os"

	"github.com/containerd/log"
	"github.com/google/uuid"
	"github.com/lightplacer/lpmerge/catalog"
	"github.com/lightplacer/lpmerge/cmd/lpmerge/commands/internal"
	"github.com/lightplacer/lpmerge/config"
	"github.com/lightplacer/lpmerge/placer"
	"github.com/opencontainers/go-digest"
	"github.com/urfave/cli/v3"
)

const (
	outputFlag      = "output"
	addFlagsFlag    = "add-flags"
	removeFlagsFlag = "remove-flags"
	indentFlag      = "indent"
	noCatalogFlag   = "no-catalog"
	stdoutSentinel  = "-"
	mergedFilePerms = 0644
)

// MergeCommand merges light placement documents into one.
var MergeCommand = &cli.Command{
	Name:      "merge",
	Usage:     "merge light placement documents into one",
	ArgsUsage: "[flags] <document>...",
	Description: `Merge light placement documents in priority order: the first document
that configures an entry key keeps it in full, later documents only
contribute keys the earlier ones lack. Flag rewrites from the
configuration and the command line are applied to every light entry of
the result.
`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    outputFlag,
			Aliases: []string{"o"},
			Usage:   "write the merged document to a file instead of stdout",
		},
		&cli.StringSliceFlag{
			Name:  addFlagsFlag,
			Usage: "flag to add to every light entry (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  removeFlagsFlag,
			Usage: "flag to remove from every light entry (repeatable)",
		},
		&cli.IntFlag{
			Name:  indentFlag,
			Usage: "number of spaces to indent the output with (0 for compact)",
			Value: 2,
		},
		&cli.BoolFlag{
			Name:  noCatalogFlag,
			Usage: "do not record the run in the merge catalog",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		ctx, cfg, cancel, err := internal.AppContext(ctx, cmd)
		if err != nil {
			return err
		}
		defer cancel()

		add, err := placer.ParseFlags(append(cfg.Merge.AddFlags, cmd.StringSlice(addFlagsFlag)...))
		if err != nil {
			return err
		}
		remove, err := placer.ParseFlags(append(cfg.Merge.RemoveFlags, cmd.StringSlice(removeFlagsFlag)...))
		if err != nil {
			return err
		}

		paths := cmd.Args().Slice()
		docs, err := placer.LoadDocuments(ctx, paths)
		if err != nil {
			return err
		}

		merged := placer.Merge(docs)
		if _, err := placer.RewriteFlags(merged, add, remove); err != nil {
			return err
		}

		indent := cfg.OutputIndent
		if cmd.IsSet(indentFlag) {
			indent = int(cmd.Int(indentFlag))
		}
		var buf bytes.Buffer
		if err := placer.EncodeDocument(&buf, merged, indent); err != nil {
			return err
		}

		output := cmd.String(outputFlag)
		if output == "" || output == stdoutSentinel {
			output = stdoutSentinel
			if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
				return err
			}
		} else if err := writeFileAtomic(output, buf.Bytes()); err != nil {
			return err
		}

		if !cmd.Bool(noCatalogFlag) && !cfg.Catalog.Disable {
			recordRun(ctx, cmd, cfg, &catalog.Entry{
				Digest:      digest.FromBytes(buf.Bytes()).String(),
				Size:        int64(buf.Len()),
				Output:      output,
				Inputs:      paths,
				AddFlags:    placer.FlagStrings(add),
				RemoveFlags: placer.FlagStrings(remove),
				Documents:   int64(len(paths)),
				Entries:     int64(merged.Entries()),
				Lights:      int64(merged.Lights()),
			})
		}
		return nil
	},
}

// writeFileAtomic writes data to path through a uniquely named temp file in
// the same directory, so a failed run never leaves a half-written document.
func writeFileAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.lpmerge-%s.tmp", path, uuid.New().String())
	if err := os.WriteFile(tmp, data, mergedFilePerms); err != nil {
		return fmt.Errorf("failed to write merged document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write merged document: %w", err)
	}
	return nil
}

// recordRun records a merge in the catalog. Failures are logged, not
// returned: the merged document is already written and recording is
// bookkeeping.
func recordRun(ctx context.Context, cmd *cli.Command, cfg *config.Config, entry *catalog.Entry) {
	c, err := internal.OpenCatalog(cmd, cfg)
	if err != nil {
		log.G(ctx).WithError(err).Warn("failed to open the merge catalog")
		return
	}
	defer c.Close()
	if err := c.Record(ctx, entry); err != nil {
		log.G(ctx).WithError(err).Warn("failed to record the merge run")
		return
	}
	log.G(ctx).WithField("id", entry.ID).Debug("merge run recorded")
}
