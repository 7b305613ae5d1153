// SPDX-License-Identifier: Apache-2.0

// Package rules builds the immutable compromised-package rule set that
// resolved dependencies are matched against.
package rules

import (
	"sort"

	"github.com/compromised-scan/npmscan/meta"
)

// Rule is one compromised-list entry. A Rule with an empty Version
// matches any version of the package; otherwise only the identical
// version string matches.
type Rule struct {
	Scope   string
	Name    string
	Version string
}

func (r Rule) key() string {
	return r.Scope + "\x00" + r.Name
}

// Set is a parsed, deduplicated compromised list. Build it once with
// Build; it is read-only afterwards.
type Set struct {
	// exact maps (scope, name) to the set of listed versions.
	exact map[string]map[string]struct{}
	// names holds the (scope, name) keys listed without a version.
	names map[string]struct{}
}

// Build parses raw list entries (already stripped of comments and
// blank lines, see ReadLines) into a Set. It fails on the first
// malformed entry: a silently dropped rule would be a hole in the
// scan, not a warning.
func Build(lines []Line) (*Set, error) {
	s := &Set{
		exact: make(map[string]map[string]struct{}),
		names: make(map[string]struct{}),
	}
	for _, ln := range lines {
		ref, err := meta.ParseIdentifier(ln.Text)
		if err != nil {
			return nil, &ParseError{Line: ln.Number, Text: ln.Text, Err: err}
		}
		r := Rule{Scope: ref.Scope, Name: ref.Name, Version: ref.Version}
		if r.Version == "" {
			s.names[r.key()] = struct{}{}
			continue
		}
		versions, ok := s.exact[r.key()]
		if !ok {
			versions = make(map[string]struct{})
			s.exact[r.key()] = versions
		}
		versions[r.Version] = struct{}{}
	}
	return s, nil
}

// Match reports how pkg relates to the set. An exact-version rule
// takes precedence over a name-only rule for the same package. The
// second return value is false when nothing matched. Version
// comparison is exact string equality, never semver-aware.
func (s *Set) Match(pkg meta.PackageRef) (meta.MatchKind, bool) {
	key := pkg.Scope + "\x00" + pkg.Name
	if versions, ok := s.exact[key]; ok {
		if _, ok := versions[pkg.Version]; ok {
			return meta.MatchExact, true
		}
	}
	if _, ok := s.names[key]; ok {
		return meta.MatchNameOnly, true
	}
	return "", false
}

// Len returns the number of distinct rules in the set.
func (s *Set) Len() int {
	n := len(s.names)
	for _, versions := range s.exact {
		n += len(versions)
	}
	return n
}

// Names returns the display names of all name-only rules, sorted.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.names))
	for key := range s.names {
		out = append(out, displayKey(key))
	}
	sort.Strings(out)
	return out
}

// Exact returns the "name@version" display strings of all
// exact-version rules, sorted.
func (s *Set) Exact() []string {
	out := make([]string, 0, len(s.exact))
	for key, versions := range s.exact {
		for v := range versions {
			out = append(out, displayKey(key)+"@"+v)
		}
	}
	sort.Strings(out)
	return out
}

func displayKey(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == 0 {
			if i == 0 {
				return key[1:]
			}
			return "@" + key[:i] + "/" + key[i+1:]
		}
	}
	return key
}
