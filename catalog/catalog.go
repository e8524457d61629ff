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

// Package catalog keeps a local, bolt-db backed record of merge runs. It
// stores one entry per run in the following schema.
//
// - lpmerge_catalog
//   - run ID: <string>       : bucket for each run, keyed by a creation-ordered ID.
//     - digest: <string>     : digest of the merged document.
//     - size: <varint>       : size of the merged document in bytes.
//     - output: <string>     : path the merged document was written to.
//     - inputs: <json>       : source document paths, in priority order.
//     - add_flags: <json>    : flag names added on the run.
//     - remove_flags: <json> : flag names removed on the run.
//     - documents: <varint>  : number of source documents.
//     - entries: <varint>    : number of entry keys in the result.
//     - lights: <varint>     : number of light entries in the result.
//     - created_at: <binary> : when the merge ran.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/containerd/errdefs"
	"github.com/rs/xid"
	bolt "go.etcd.io/bbolt"
)

const catalogDbName = "catalog.db"

var (
	bucketKeyCatalog     = []byte("lpmerge_catalog")
	bucketKeyDigest      = []byte("digest")
	bucketKeySize        = []byte("size")
	bucketKeyOutput      = []byte("output")
	bucketKeyInputs      = []byte("inputs")
	bucketKeyAddFlags    = []byte("add_flags")
	bucketKeyRemoveFlags = []byte("remove_flags")
	bucketKeyDocuments   = []byte("documents")
	bucketKeyEntries     = []byte("entries")
	bucketKeyLights      = []byte("lights")
	bucketKeyCreatedAt   = []byte("created_at")
)

// Catalog is a bolt-db based store of merge run entries.
type Catalog struct {
	db *bolt.DB
}

// DBPath returns the catalog database path under root.
func DBPath(root string) string {
	return filepath.Join(root, catalogDbName)
}

// Open opens the catalog database at path, creating it and its parent
// directory as needed.
func Open(path string) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record writes entry to the catalog. An empty ID is assigned a fresh
// creation-ordered one and a zero CreatedAt is set to the current time; both
// are written back to entry.
func (c *Catalog) Record(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("no entry to record: %w", errdefs.ErrInvalidArgument)
	}
	if entry.ID == "" {
		entry.ID = xid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketKeyCatalog)
		if err != nil {
			return err
		}
		return putEntry(bucket, entry)
	})
}

// Get returns the entry with the given run ID.
func (c *Catalog) Get(ctx context.Context, id string) (*Entry, error) {
	var entry *Entry
	err := c.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketKeyCatalog)
		if bucket == nil {
			return fmt.Errorf("no catalog entry for %s: %w", id, errdefs.ErrNotFound)
		}
		runBkt := bucket.Bucket([]byte(id))
		if runBkt == nil {
			return fmt.Errorf("no catalog entry for %s: %w", id, errdefs.ErrNotFound)
		}
		var err error
		entry, err = loadEntry(runBkt, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Walk calls walkFn once per entry, oldest run first.
func (c *Catalog) Walk(ctx context.Context, walkFn WalkFn) error {
	return c.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketKeyCatalog)
		if bucket == nil {
			return nil
		}
		return bucket.ForEachBucket(func(k []byte) error {
			entry, err := loadEntry(bucket.Bucket(k), string(k))
			if err != nil {
				return err
			}
			return walkFn(entry)
		})
	})
}

// Remove deletes the entry with the given run ID.
func (c *Catalog) Remove(ctx context.Context, id string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketKeyCatalog)
		if bucket == nil || bucket.Bucket([]byte(id)) == nil {
			return fmt.Errorf("no catalog entry for %s: %w", id, errdefs.ErrNotFound)
		}
		return bucket.DeleteBucket([]byte(id))
	})
}

// RemoveAll deletes every entry.
func (c *Catalog) RemoveAll(ctx context.Context) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketKeyCatalog) == nil {
			return nil
		}
		return tx.DeleteBucket(bucketKeyCatalog)
	})
}

func putEntry(bucket *bolt.Bucket, entry *Entry) error {
	runBkt, err := bucket.CreateBucketIfNotExists([]byte(entry.ID))
	if err != nil {
		return err
	}

	size, err := encodeInt(entry.Size)
	if err != nil {
		return err
	}
	documents, err := encodeInt(entry.Documents)
	if err != nil {
		return err
	}
	entries, err := encodeInt(entry.Entries)
	if err != nil {
		return err
	}
	lights, err := encodeInt(entry.Lights)
	if err != nil {
		return err
	}
	inputs, err := json.Marshal(entry.Inputs)
	if err != nil {
		return err
	}
	addFlags, err := json.Marshal(entry.AddFlags)
	if err != nil {
		return err
	}
	removeFlags, err := json.Marshal(entry.RemoveFlags)
	if err != nil {
		return err
	}
	createdAt, err := entry.CreatedAt.MarshalBinary()
	if err != nil {
		return err
	}

	updates := []struct {
		key []byte
		val []byte
	}{
		{bucketKeyDigest, []byte(entry.Digest)},
		{bucketKeySize, size},
		{bucketKeyOutput, []byte(entry.Output)},
		{bucketKeyInputs, inputs},
		{bucketKeyAddFlags, addFlags},
		{bucketKeyRemoveFlags, removeFlags},
		{bucketKeyDocuments, documents},
		{bucketKeyEntries, entries},
		{bucketKeyLights, lights},
		{bucketKeyCreatedAt, createdAt},
	}
	for _, update := range updates {
		if err := runBkt.Put(update.key, update.val); err != nil {
			return err
		}
	}
	return nil
}

func loadEntry(runBkt *bolt.Bucket, id string) (*Entry, error) {
	entry := Entry{ID: id}

	size, err := decodeInt(runBkt.Get(bucketKeySize))
	if err != nil {
		return nil, err
	}
	documents, err := decodeInt(runBkt.Get(bucketKeyDocuments))
	if err != nil {
		return nil, err
	}
	entries, err := decodeInt(runBkt.Get(bucketKeyEntries))
	if err != nil {
		return nil, err
	}
	lights, err := decodeInt(runBkt.Get(bucketKeyLights))
	if err != nil {
		return nil, err
	}
	if raw := runBkt.Get(bucketKeyInputs); len(raw) > 0 {
		if err := json.Unmarshal(raw, &entry.Inputs); err != nil {
			return nil, fmt.Errorf("cannot unmarshal inputs: %w", err)
		}
	}
	if raw := runBkt.Get(bucketKeyAddFlags); len(raw) > 0 {
		if err := json.Unmarshal(raw, &entry.AddFlags); err != nil {
			return nil, fmt.Errorf("cannot unmarshal add flags: %w", err)
		}
	}
	if raw := runBkt.Get(bucketKeyRemoveFlags); len(raw) > 0 {
		if err := json.Unmarshal(raw, &entry.RemoveFlags); err != nil {
			return nil, fmt.Errorf("cannot unmarshal remove flags: %w", err)
		}
	}
	if raw := runBkt.Get(bucketKeyCreatedAt); raw != nil {
		if err := entry.CreatedAt.UnmarshalBinary(raw); err != nil {
			return nil, fmt.Errorf("cannot unmarshal CreatedAt time: %w", err)
		}
	}

	entry.Digest = string(runBkt.Get(bucketKeyDigest))
	entry.Output = string(runBkt.Get(bucketKeyOutput))
	entry.Size = size
	entry.Documents = documents
	entry.Entries = entries
	entry.Lights = lights
	return &entry, nil
}
