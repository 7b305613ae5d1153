// SPDX-License-Identifier: Apache-2.0

// Package source abstracts where the flat package list to scan comes
// from: a live `npm ls` run, a saved npm JSON document, or an SBOM.
package source

import (
	"fmt"
	"io"

	"github.com/compromised-scan/npmscan/meta"
	"github.com/compromised-scan/npmscan/npm"
	"github.com/compromised-scan/npmscan/sbom"
)

// Source yields the resolved packages of a project. Implementations
// return the list flat and deduplicated, every distinct
// (scope, name, version) occurrence exactly once.
type Source interface {
	Name() string
	Packages() ([]meta.PackageRef, error)
}

// NpmCommand runs `npm ls --all --json` in Dir and walks the result.
type NpmCommand struct {
	Dir string
}

func (s NpmCommand) Name() string { return "npm ls" }

func (s NpmCommand) Packages() ([]meta.PackageRef, error) {
	tree, err := npm.ListTree(s.Dir)
	if err != nil {
		return nil, err
	}
	return npm.Walk(tree)
}

// NpmFile reads a saved `npm ls --all --json` document from a file.
type NpmFile struct {
	Path string
}

func (s NpmFile) Name() string { return s.Path }

func (s NpmFile) Packages() ([]meta.PackageRef, error) {
	tree, err := npm.ReadTreeFile(s.Path)
	if err != nil {
		return nil, err
	}
	return npm.Walk(tree)
}

// NpmReader reads an `npm ls --all --json` document from an arbitrary
// reader, typically stdin.
type NpmReader struct {
	Reader io.Reader
	Label  string
}

func (s NpmReader) Name() string { return s.Label }

func (s NpmReader) Packages() ([]meta.PackageRef, error) {
	tree, err := npm.ReadTree(s.Reader)
	if err != nil {
		return nil, fmt.Errorf("reading npm tree from %s: %w", s.Label, err)
	}
	return npm.Walk(tree)
}

// SBOMFile reads the package list from a CycloneDX or SPDX document.
type SBOMFile struct {
	Path string
}

func (s SBOMFile) Name() string { return s.Path }

func (s SBOMFile) Packages() ([]meta.PackageRef, error) {
	return sbom.ReadFile(s.Path)
}
