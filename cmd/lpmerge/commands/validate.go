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
	"errors"
	"fmt"

	"github.com/containerd/log"
	"github.com/hashicorp/go-multierror"
	"github.com/lightplacer/lpmerge/placer"
	"github.com/urfave/cli/v3"
)

// ValidateCommand checks documents against the canonical Light Placer shape.
var ValidateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "check documents against the canonical shape",
	ArgsUsage: "<document>...",
	Description: `Check documents for problems Light Placer itself would choke on:
malformed entries, flags outside the vocabulary, unpaired shadow
settings and bad placement points. All findings across all documents
are reported.
`,
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() == 0 {
			return errors.New("at least one document needs to be specified")
		}

		var errs *multierror.Error
		for _, path := range cmd.Args().Slice() {
			doc, err := placer.LoadDocument(path)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			if err := placer.Validate(doc); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
				continue
			}
			log.G(ctx).WithField("path", path).Debug("document is clean")
		}
		return errs.ErrorOrNil()
	},
}
