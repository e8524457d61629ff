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

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lightplacer/lpmerge/cmd/lpmerge/commands/internal"
	"github.com/urfave/cli/v3"
)

var infoCommand = &cli.Command{
	Name:        "info",
	Usage:       "display a merge run",
	Description: "get detailed info about a recorded merge run",
	ArgsUsage:   "<run-id>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  JSONFlag,
			Usage: "output in JSON format",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		id := cmd.Args().First()
		if id == "" {
			return errors.New("a run ID needs to be specified")
		}

		ctx, cfg, cancel, err := internal.AppContext(ctx, cmd)
		if err != nil {
			return err
		}
		defer cancel()

		c, err := internal.OpenCatalog(cmd, cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		run, err := c.Get(ctx, id)
		if err != nil {
			return err
		}

		if cmd.Bool(JSONFlag) {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		}

		fmt.Printf("ID:            %s\n", run.ID)
		fmt.Printf("Output:        %s\n", run.Output)
		fmt.Printf("Digest:        %s\n", run.Digest)
		fmt.Printf("Size:          %d bytes\n", run.Size)
		fmt.Printf("Documents:     %d\n", run.Documents)
		fmt.Printf("Entries:       %d\n", run.Entries)
		fmt.Printf("Lights:        %d\n", run.Lights)
		fmt.Printf("Created:       %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
		if len(run.AddFlags) > 0 {
			fmt.Printf("Added flags:   %s\n", strings.Join(run.AddFlags, ", "))
		}
		if len(run.RemoveFlags) > 0 {
			fmt.Printf("Removed flags: %s\n", strings.Join(run.RemoveFlags, ", "))
		}
		fmt.Println("Inputs:")
		for i, input := range run.Inputs {
			fmt.Printf("  [%d] %s\n", i, input)
		}
		return nil
	},
}
