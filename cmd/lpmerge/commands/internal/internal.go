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

package internal

import (
	"context"

	"github.com/lightplacer/lpmerge/catalog"
	"github.com/lightplacer/lpmerge/cmd/lpmerge/commands/global"
	"github.com/lightplacer/lpmerge/config"
	"github.com/urfave/cli/v3"
)

// All CLI commands should call [AppContext] to control their lifecycle,
// once, near the start.

// AppContext returns the context and loaded configuration for a command.
func AppContext(ctx context.Context, cmd *cli.Command) (context.Context, *config.Config, context.CancelFunc, error) {
	ctx, cancel := context.WithCancel(ctx)
	cfg, err := config.LoadConfig(cmd.String(global.RootFlag), cmd.String(global.ConfigFlag))
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return ctx, cfg, cancel, nil
}

// OpenCatalog opens the merge run catalog at its configured location.
func OpenCatalog(cmd *cli.Command, cfg *config.Config) (*catalog.Catalog, error) {
	path := cfg.Catalog.Path
	if path == "" {
		path = catalog.DBPath(cmd.String(global.RootFlag))
	}
	return catalog.Open(path)
}
