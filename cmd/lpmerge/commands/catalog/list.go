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
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lightplacer/lpmerge/catalog"
	"github.com/lightplacer/lpmerge/cmd/lpmerge/commands/internal"
	"github.com/urfave/cli/v3"
)

var listCommand = &cli.Command{
	Name:        "list",
	Aliases:     []string{"ls"},
	Usage:       "list merge runs",
	Description: "list all merge runs recorded in the catalog, oldest first",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  JSONFlag,
			Usage: "output in JSON format",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
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

		var runs []*catalog.Entry
		if err := c.Walk(ctx, func(entry *catalog.Entry) error {
			runs = append(runs, entry)
			return nil
		}); err != nil {
			return err
		}

		if cmd.Bool(JSONFlag) {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}

		w := tabwriter.NewWriter(os.Stdout, 8, 8, 4, ' ', 0)
		fmt.Fprintln(w, "ID\tOUTPUT\tDOCS\tENTRIES\tLIGHTS\tCREATED\t")
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t\n",
				run.ID,
				run.Output,
				run.Documents,
				run.Entries,
				run.Lights,
				getDuration(run.CreatedAt),
			)
		}
		return w.Flush()
	},
}

func getDuration(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return fmt.Sprintf("%s ago", time.Since(t).Round(time.Second).String())
}
