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
	"errors"

	"github.com/lightplacer/lpmerge/cmd/lpmerge/commands/internal"
	"github.com/urfave/cli/v3"
)

const allFlag = "all"

var rmCommand = &cli.Command{
	Name:        "remove",
	Aliases:     []string{"rm"},
	Usage:       "remove merge runs",
	Description: "remove recorded merge runs from the catalog",
	ArgsUsage:   "<run-id>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  allFlag,
			Usage: "remove every recorded run",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		args := cmd.Args()
		if args.Len() != 0 && cmd.Bool(allFlag) {
			return errors.New("please provide either run IDs or --all, but not both")
		}
		if args.Len() == 0 && !cmd.Bool(allFlag) {
			return errors.New("at least one run ID needs to be specified")
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

		if cmd.Bool(allFlag) {
			return c.RemoveAll(ctx)
		}
		for _, id := range args.Slice() {
			if err := c.Remove(ctx, id); err != nil {
				return err
			}
		}
		return nil
	},
}
