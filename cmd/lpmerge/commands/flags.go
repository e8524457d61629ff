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
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lightplacer/lpmerge/placer"
	"github.com/urfave/cli/v3"
)

// FlagsCommand lists the light flag vocabulary accepted by merge and the
// configuration.
var FlagsCommand = &cli.Command{
	Name:  "flags",
	Usage: "list the known light flags",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "output in JSON format",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		names := placer.FlagStrings(placer.KnownFlags())
		if cmd.Bool("json") {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(names)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}
