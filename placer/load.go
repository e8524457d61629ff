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

package placer

import (
	"context"
	"fmt"
	"os"

	"github.com/containerd/log"
	"golang.org/x/sync/errgroup"
)

// LoadDocument reads and decodes a single document file.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document file: %w", err)
	}
	defer f.Close()
	doc, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %q: %w", path, err)
	}
	return doc, nil
}

// LoadDocuments reads all paths concurrently and returns the documents in
// the order the paths were given, which is the priority order Merge expects.
// The first failed path aborts the load.
func LoadDocuments(ctx context.Context, paths []string) ([]*Document, error) {
	docs := make([]*Document, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			doc, err := LoadDocument(path)
			if err != nil {
				return err
			}
			log.G(ctx).WithField("path", path).Debug("document loaded")
			docs[i] = doc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
