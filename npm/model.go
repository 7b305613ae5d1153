// SPDX-License-Identifier: Apache-2.0

// Package npm reads and walks the dependency tree emitted by
// `npm ls --all --json`.
package npm

// Node is one resolved dependency in the npm tree. The same package
// and version may appear under many parents; version resolution can
// also give a repeated package different children at different
// positions.
type Node struct {
	Version      string          `json:"version"`
	Dependencies map[string]Node `json:"dependencies"`
}

// Tree is the synthetic root of an `npm ls --all --json` document. The
// root describes the project itself and is never reported as a
// dependency.
type Tree struct {
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	Dependencies map[string]Node `json:"dependencies"`
}
