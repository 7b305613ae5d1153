// SPDX-License-Identifier: Apache-2.0

package npm

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/command"
)

const Cmd = "npm"

// ListTree runs `npm ls --all --json` in dir and decodes its output.
// npm exits non-zero for trees with peer/extraneous problems while
// still printing the full tree, so a non-zero exit is logged and the
// output parsed anyway; only a failure to run npm at all is an error.
func ListTree(dir string) (*Tree, error) {
	logrus.Infof("running %s ls --all --json", Cmd)
	stream, err := command.NewWithWorkDir(dir, Cmd, "ls", "--all", "--json").RunSilent()
	if err != nil {
		return nil, fmt.Errorf("running npm ls: %w", err)
	}
	if !stream.Success() {
		logrus.Warnf("npm ls exited non-zero, still attempting to parse its output")
	}
	tree, err := ReadTree(strings.NewReader(stream.Output()))
	if err != nil {
		return nil, fmt.Errorf("parsing npm ls output: %w", err)
	}
	logrus.Debugf("npm reported %d direct dependencies", len(tree.Dependencies))
	return tree, nil
}
