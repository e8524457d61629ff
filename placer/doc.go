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

// Package placer implements the Light Placer configuration document model and
// the operations lpmerge performs on it.
//
// A document holds three containers (addonNodes, meshes, visualEffects), each
// mapping an entry key to an opaque configuration value. Merge combines an
// ordered list of documents with first-wins conflict resolution per entry key,
// RewriteFlags rewrites the flag set of every light entry, WalkLights is the
// structural traversal both share, and Validate checks documents against the
// canonical Light Placer shape.
package placer // import "github.com/lightplacer/lpmerge/placer"
