// SPDX-License-Identifier: Apache-2.0

package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/compromised-scan/npmscan/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeJSON = `{
  "name": "demo-app",
  "version": "1.0.0",
  "dependencies": {
    "left-pad": {"version": "1.3.0"},
    "request": {
      "version": "2.88.2",
      "dependencies": {
        "left-pad": {"version": "1.3.0"}
      }
    }
  }
}`

func TestNpmReader(t *testing.T) {
	src := NpmReader{Reader: strings.NewReader(treeJSON), Label: "stdin"}
	assert.Equal(t, src.Name(), "stdin")

	refs, err := src.Packages()
	require.NoError(t, err)
	assert.ElementsMatch(t, refs, []meta.PackageRef{
		{Name: "left-pad", Version: "1.3.0"},
		{Name: "request", Version: "2.88.2"},
	})
}

func TestNpmReaderMalformed(t *testing.T) {
	src := NpmReader{Reader: strings.NewReader("{oops"), Label: "stdin"}
	_, err := src.Packages()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestNpmFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "npm-ls.json")
	require.NoError(t, os.WriteFile(path, []byte(treeJSON), 0o644))

	src := NpmFile{Path: path}
	refs, err := src.Packages()
	require.NoError(t, err)
	assert.Len(t, refs, 2)

	_, err = NpmFile{Path: filepath.Join(t.TempDir(), "missing.json")}.Packages()
	assert.Error(t, err)
}
