// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"strings"
	"testing"

	"github.com/compromised-scan/npmscan/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(texts ...string) []Line {
	out := make([]Line, 0, len(texts))
	for i, t := range texts {
		out = append(out, Line{Number: i + 1, Text: t})
	}
	return out
}

func TestBuild(t *testing.T) {
	set, err := Build(lines("event-stream", "left-pad@1.3.0", "@bad/evil-lib"))
	require.NoError(t, err)
	assert.Equal(t, set.Len(), 3)

	kind, ok := set.Match(meta.PackageRef{Name: "event-stream", Version: "3.3.6"})
	assert.True(t, ok)
	assert.Equal(t, kind, meta.MatchNameOnly)

	kind, ok = set.Match(meta.PackageRef{Name: "left-pad", Version: "1.3.0"})
	assert.True(t, ok)
	assert.Equal(t, kind, meta.MatchExact)

	// an exact-version rule says nothing about other versions
	_, ok = set.Match(meta.PackageRef{Name: "left-pad", Version: "1.2.0"})
	assert.False(t, ok)

	kind, ok = set.Match(meta.PackageRef{Scope: "bad", Name: "evil-lib", Version: "9.9.9"})
	assert.True(t, ok)
	assert.Equal(t, kind, meta.MatchNameOnly)

	_, ok = set.Match(meta.PackageRef{Name: "lodash", Version: "4.17.21"})
	assert.False(t, ok)
}

func TestBuildFailFast(t *testing.T) {
	_, err := Build(lines("left-pad@1.3.0", "@incomplete", "event-stream"))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, perr.Line, 2)
	assert.Equal(t, perr.Text, "@incomplete")
}

// Exact-version rules beat name-only rules for the same package.
func TestMatchPrecedence(t *testing.T) {
	set, err := Build(lines("left-pad", "left-pad@1.3.0"))
	require.NoError(t, err)

	kind, ok := set.Match(meta.PackageRef{Name: "left-pad", Version: "1.3.0"})
	assert.True(t, ok)
	assert.Equal(t, kind, meta.MatchExact)

	kind, ok = set.Match(meta.PackageRef{Name: "left-pad", Version: "1.2.0"})
	assert.True(t, ok)
	assert.Equal(t, kind, meta.MatchNameOnly)
}

// Version comparison is exact string equality, never semver-aware.
func TestMatchExactStringVersions(t *testing.T) {
	set, err := Build(lines("left-pad@1.3.0-beta"))
	require.NoError(t, err)

	_, ok := set.Match(meta.PackageRef{Name: "left-pad", Version: "1.3.0"})
	assert.False(t, ok)

	kind, ok := set.Match(meta.PackageRef{Name: "left-pad", Version: "1.3.0-beta"})
	assert.True(t, ok)
	assert.Equal(t, kind, meta.MatchExact)
}

func TestBuildDeduplicates(t *testing.T) {
	dup, err := Build(lines("left-pad@1.3.0", "left-pad@1.3.0", "event-stream", "event-stream"))
	require.NoError(t, err)
	uniq, err := Build(lines("left-pad@1.3.0", "event-stream"))
	require.NoError(t, err)

	assert.Equal(t, dup.Len(), 2)
	assert.Equal(t, dup.Len(), uniq.Len())
	assert.Equal(t, dup.Names(), uniq.Names())
	assert.Equal(t, dup.Exact(), uniq.Exact())
}

func TestNamesAndExactSorted(t *testing.T) {
	set, err := Build(lines("zlib-fake", "@bad/evil-lib", "left-pad@1.3.0", "aaa@0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, set.Names(), []string{"@bad/evil-lib", "zlib-fake"})
	assert.Equal(t, set.Exact(), []string{"aaa@0.0.1", "left-pad@1.3.0"})
}

func TestReadLines(t *testing.T) {
	in := "# compromised packages\n\nevent-stream\n  left-pad@1.3.0  \n\n# trailing comment\n@bad/evil-lib\n"
	got, err := ReadLines(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, got, []Line{
		{Number: 3, Text: "event-stream"},
		{Number: 4, Text: "left-pad@1.3.0"},
		{Number: 7, Text: "@bad/evil-lib"},
	})
}

func TestLoad(t *testing.T) {
	set, err := Load(strings.NewReader("# list\nevent-stream\nleft-pad@1.3.0\n"))
	require.NoError(t, err)
	assert.Equal(t, set.Len(), 2)

	// a malformed entry reports its file line number
	_, err = Load(strings.NewReader("# list\n\n@incomplete\n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, perr.Line, 3)
}
