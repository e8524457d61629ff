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
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
)

func writeDocumentFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDocument(t *testing.T) {
	path := writeDocumentFile(t, t.TempDir(), "base.json",
		`{"addonNodes": {"49": [{"data": {"light": "L", "flags": ""}}]}}`)

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Entries(); got != 1 {
		t.Fatalf("expected 1 entry, got %d", got)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadDocumentMalformed(t *testing.T) {
	path := writeDocumentFile(t, t.TempDir(), "bad.json", `{"addonNodes": {}} trailing`)

	_, err := LoadDocument(path)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadDocuments(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	var paths []string
	for i := 0; i < 5; i++ {
		paths = append(paths, writeDocumentFile(t, dir, fmt.Sprintf("doc%d.json", i),
			fmt.Sprintf(`{"addonNodes": {"%d": [{"data": {"light": "L%d", "flags": ""}}]}}`, i, i)))
	}

	docs, err := LoadDocuments(context.Background(), paths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != len(paths) {
		t.Fatalf("expected %d documents, got %d", len(paths), len(docs))
	}
	for i, doc := range docs {
		key := fmt.Sprintf("%d", i)
		if _, ok := doc.AddonNodes[key]; !ok {
			t.Fatalf("document %d out of order: %v", i, doc.AddonNodes)
		}
	}
}

func TestLoadDocumentsEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)

	docs, err := LoadDocuments(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}

func TestLoadDocumentsPropagatesFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	paths := []string{
		writeDocumentFile(t, dir, "good.json", `{"meshes": {}}`),
		filepath.Join(dir, "absent.json"),
	}

	if _, err := LoadDocuments(context.Background(), paths); err == nil {
		t.Fatal("expected an error")
	}
}
