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

package global

import (
	"context"
	"fmt"
	"os"

	"github.com/containerd/log"
	"github.com/lightplacer/lpmerge/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Global flags for the lpmerge CLI

const (
	RootFlag     = "root"
	ConfigFlag   = "config"
	LogLevelFlag = "log-level"
)

var defaultLogLevel = logrus.WarnLevel

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:    RootFlag,
		Usage:   "path to the lpmerge root directory",
		Value:   config.DefaultRootPath(),
		Sources: cli.EnvVars("LPMERGE_ROOT"),
	},
	&cli.StringFlag{
		Name:    ConfigFlag,
		Usage:   "path to the configuration file (default: <root>/config.toml)",
		Sources: cli.EnvVars("LPMERGE_CONFIG"),
	},
	&cli.StringFlag{
		Name:  LogLevelFlag,
		Usage: "set the logging level [trace, debug, info, warn, error, fatal, panic]",
		Value: defaultLogLevel.String(),
	},
}

// Setup prepares the logger from the global flags and runs before every
// command. Logs go to stderr so command output stays clean on stdout.
func Setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	lvl, err := logrus.ParseLevel(cmd.String(LogLevelFlag))
	if err != nil {
		return ctx, fmt.Errorf("failed to prepare logger: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	return log.WithLogger(ctx, log.L), nil
}
