// SPDX-License-Identifier: Apache-2.0

// Package sbom loads the package list to scan from a software bill of
// materials instead of a live npm tree. CycloneDX JSON and SPDX JSON
// documents are supported; the format is sniffed from the content.
package sbom

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/sirupsen/logrus"
	spdxjson "github.com/spdx/tools-golang/json"

	"github.com/compromised-scan/npmscan/meta"
)

var errUnknownFormat = errors.New("unrecognized SBOM format (expected CycloneDX JSON or SPDX JSON)")

// ReadFile parses an SBOM file and returns its components as a flat,
// deduplicated package list.
func ReadFile(path string) ([]meta.PackageRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading SBOM file: %w", err)
	}
	switch {
	case isCycloneDX(data):
		logrus.Debugf("%s detected as CycloneDX", path)
		return parseCycloneDX(data)
	case isSPDX(data):
		logrus.Debugf("%s detected as SPDX", path)
		return parseSPDX(data)
	}
	return nil, errUnknownFormat
}

func isCycloneDX(data []byte) bool {
	return bytes.Contains(data, []byte(`"bomFormat"`)) ||
		(bytes.Contains(data, []byte(`"$schema"`)) && bytes.Contains(data, []byte("cyclonedx")))
}

func isSPDX(data []byte) bool {
	return bytes.Contains(data, []byte(`"spdxVersion"`))
}

func parseCycloneDX(data []byte) ([]meta.PackageRef, error) {
	bom := &cdx.BOM{}
	decoder := cdx.NewBOMDecoder(bytes.NewReader(data), cdx.BOMFileFormatJSON)
	if err := decoder.Decode(bom); err != nil {
		return nil, fmt.Errorf("decoding CycloneDX BOM: %w", err)
	}

	refs := []meta.PackageRef{}
	if bom.Components == nil {
		return refs, nil
	}
	seen := make(map[string]struct{})
	for _, c := range *bom.Components {
		ref := componentRef(c.Group, c.Name, c.Version)
		if ref.Name == "" {
			continue
		}
		if _, ok := seen[ref.Key()]; ok {
			continue
		}
		seen[ref.Key()] = struct{}{}
		refs = append(refs, ref)
	}
	return refs, nil
}

func parseSPDX(data []byte) ([]meta.PackageRef, error) {
	doc, err := spdxjson.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding SPDX document: %w", err)
	}

	refs := []meta.PackageRef{}
	seen := make(map[string]struct{})
	for _, pkg := range doc.Packages {
		ref := componentRef("", pkg.PackageName, pkg.PackageVersion)
		if ref.Name == "" {
			continue
		}
		if _, ok := seen[ref.Key()]; ok {
			continue
		}
		seen[ref.Key()] = struct{}{}
		refs = append(refs, ref)
	}
	return refs, nil
}

// componentRef builds a PackageRef from SBOM component fields.
// CycloneDX carries the npm scope in the component group, with or
// without the leading '@'; when the group is empty the scope may still
// be embedded in the name itself.
func componentRef(group, name, version string) meta.PackageRef {
	if group != "" {
		return meta.PackageRef{
			Scope:   strings.TrimPrefix(group, "@"),
			Name:    name,
			Version: version,
		}
	}
	scope, base := meta.SplitName(name)
	return meta.PackageRef{Scope: scope, Name: base, Version: version}
}
