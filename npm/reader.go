// SPDX-License-Identifier: Apache-2.0

package npm

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadTree decodes an `npm ls --all --json` document.
func ReadTree(r io.Reader) (*Tree, error) {
	tree := &Tree{}
	if err := json.NewDecoder(r).Decode(tree); err != nil {
		return nil, fmt.Errorf("decoding npm tree JSON: %w", err)
	}
	return tree, nil
}

// ReadTreeFile decodes an `npm ls --all --json` document from a file.
func ReadTreeFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening npm tree file: %w", err)
	}
	defer f.Close()
	return ReadTree(f)
}
