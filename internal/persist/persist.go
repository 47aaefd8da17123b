// Package persist snapshots a trained RandomForest to disk with
// encoding/gob. This is a collaborator-layer concern only: forest/ensemble
// itself exposes no save/load, preserving the CORE's model-persistence
// Non-goal. Persistence lives here, one layer up, the way
// cmd/trainer/main.go in the teacher binds gob directly into its own
// main function rather than into the model package.
package persist

import (
	"encoding/gob"
	"fmt"
	"os"

	"forestlab/forest/ensemble"
	"forestlab/forest/split"
	"forestlab/forest/tree"
)

func init() {
	gob.Register(&tree.LeafNode{})
	gob.Register(&tree.InternalNode{})
	gob.Register(split.Threshold{})
	gob.Register(split.CategorySet{})
}

// Save encodes f to path with encoding/gob.
func Save(f *ensemble.RandomForest, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: creating %s: %w", path, err)
	}
	defer out.Close()

	enc := gob.NewEncoder(out)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("persist: encoding forest: %w", err)
	}
	return nil
}

// Load decodes a RandomForest previously written by Save.
func Load(path string) (*ensemble.RandomForest, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persist: opening %s: %w", path, err)
	}
	defer in.Close()

	var f ensemble.RandomForest
	dec := gob.NewDecoder(in)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("persist: decoding forest: %w", err)
	}
	return &f, nil
}
