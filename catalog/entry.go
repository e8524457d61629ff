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

import "time"

// Entry is the record of one merge run.
type Entry struct {
	// ID is the unique, creation-ordered identifier of the run.
	ID string
	// Digest is the digest of the merged document as written.
	Digest string
	// Size is the merged document's size in bytes.
	Size int64
	// Output is the path the merged document was written to, or "-" for stdout.
	Output string
	// Inputs are the source document paths, in priority order.
	Inputs []string
	// AddFlags are the canonical flag names added to every light entry.
	AddFlags []string
	// RemoveFlags are the canonical flag names removed from every light entry.
	RemoveFlags []string
	// Documents is the number of source documents merged.
	Documents int64
	// Entries is the number of entry keys in the merged document.
	Entries int64
	// Lights is the number of light entries in the merged document.
	Lights int64
	// CreatedAt is when the merge ran.
	CreatedAt time.Time
}

// WalkFn is called once per catalog entry. Returning an error stops the walk.
type WalkFn func(*Entry) error
