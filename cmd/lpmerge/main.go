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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lightplacer/lpmerge/cmd/lpmerge/commands"
	"github.com/lightplacer/lpmerge/cmd/lpmerge/commands/catalog"
	"github.com/lightplacer/lpmerge/cmd/lpmerge/commands/global"
	"github.com/lightplacer/lpmerge/version"
	"github.com/urfave/cli/v3"
)

func buildApp() *cli.Command {
	return &cli.Command{
		Name:    "lpmerge",
		Usage:   "merge, rewrite and inspect light placement documents",
		Flags:   global.Flags,
		Version: fmt.Sprintf("%s %s", version.Version, version.Revision),
		Commands: []*cli.Command{
			commands.MergeCommand,
			commands.ValidateCommand,
			commands.InfoCommand,
			commands.FlagsCommand,
			catalog.Command,
		},
		Before: global.Setup,
	}
}

func main() {
	app := buildApp()

	ctx, cancel := context.WithCancel(context.Background())
	if err := app.Run(ctx, os.Args); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "lpmerge: %v\n", err)
		os.Exit(1)
	}
	cancel()
}
