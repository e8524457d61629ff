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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Category names one of the three attachment containers of a document.
type Category string

const (
	// CategoryAddonNodes holds lights attached to numeric addon node IDs.
	CategoryAddonNodes Category = "addonNodes"
	// CategoryMeshes holds lights attached to model file paths.
	CategoryMeshes Category = "meshes"
	// CategoryVisualEffects holds lights attached to visual effect paths.
	CategoryVisualEffects Category = "visualEffects"
)

// Categories lists the containers in their canonical order. Every operation
// that iterates a document follows this order.
var Categories = []Category{CategoryAddonNodes, CategoryMeshes, CategoryVisualEffects}

// Container maps an entry key (a node ID, model path, or effect path) to its
// configuration value. Values are decoded JSON trees; Merge treats them as
// opaque and never looks inside them.
type Container map[string]any

// Document is one parsed light placement configuration. Unknown top-level
// fields in the source file are dropped on decode.
type Document struct {
	AddonNodes    Container `json:"addonNodes"`
	Meshes        Container `json:"meshes"`
	VisualEffects Container `json:"visualEffects"`
}

// NewDocument returns a document with all three containers allocated, so that
// an empty category serializes as {} rather than null.
func NewDocument() *Document {
	return &Document{
		AddonNodes:    Container{},
		Meshes:        Container{},
		VisualEffects: Container{},
	}
}

// Container returns the named container. A category the source document did
// not carry yields a nil map, which reads as empty.
func (d *Document) Container(category Category) Container {
	switch category {
	case CategoryAddonNodes:
		return d.AddonNodes
	case CategoryMeshes:
		return d.Meshes
	case CategoryVisualEffects:
		return d.VisualEffects
	}
	return nil
}

// Lights returns the number of light entries in the document.
func (d *Document) Lights() (n int) {
	WalkLights(d, func(map[string]any) error {
		n++
		return nil
	})
	return n
}

// Entries returns the number of entry keys across all containers.
func (d *Document) Entries() (n int) {
	if d == nil {
		return 0
	}
	for _, category := range Categories {
		n += len(d.Container(category))
	}
	return n
}

var errTrailingData = errors.New("trailing data after document")

// DecodeDocument reads a single document from r. Numbers are decoded as
// json.Number so values round-trip without loss of precision. Content after
// the closing brace of the document is an error.
func DecodeDocument(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	doc := new(Document)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("unable to decode reader into document: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return doc, nil
}

// EncodeDocument writes doc to w indented with the given number of spaces,
// object keys in sorted order. An indent of zero or less writes compact JSON.
func EncodeDocument(w io.Writer, doc *Document, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("unable to encode document: %w", err)
	}
	return nil
}
