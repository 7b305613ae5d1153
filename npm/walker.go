// SPDX-License-Identifier: Apache-2.0

package npm

import (
	"errors"
	"sort"

	"github.com/compromised-scan/npmscan/meta"
)

// maxDepth bounds the tree recursion. npm trees are DAG-shaped and far
// shallower than this in practice; the guard only exists so that
// malformed or adversarial input JSON fails instead of recursing
// without limit.
const maxDepth = 512

// ErrTreeTooDeep is returned when the dependency tree nests deeper
// than maxDepth levels.
var ErrTreeTooDeep = errors.New("dependency tree exceeds maximum supported depth")

// Walk traverses the tree depth-first and returns every distinct
// (scope, name, version) occurrence exactly once. A repeated node is
// not emitted again but its children are still visited, since the same
// package can carry different transitive children at different
// positions. A node with no version is emitted with an empty version
// rather than failing the walk. Children are visited in sorted name
// order so the result is deterministic for a given input.
func Walk(tree *Tree) ([]meta.PackageRef, error) {
	seen := make(map[string]struct{})
	out := []meta.PackageRef{}

	var walk func(name string, node Node, depth int) error
	walk = func(name string, node Node, depth int) error {
		if depth > maxDepth {
			return ErrTreeTooDeep
		}
		scope, base := meta.SplitName(name)
		ref := meta.PackageRef{Scope: scope, Name: base, Version: node.Version}
		if _, ok := seen[ref.Key()]; !ok {
			seen[ref.Key()] = struct{}{}
			out = append(out, ref)
		}
		for _, childName := range sortedNames(node.Dependencies) {
			if err := walk(childName, node.Dependencies[childName], depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range sortedNames(tree.Dependencies) {
		if err := walk(name, tree.Dependencies[name], 1); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func sortedNames(deps map[string]Node) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
