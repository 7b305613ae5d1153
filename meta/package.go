// SPDX-License-Identifier: Apache-2.0

package meta

// PackageRef is the resolved package occurrence abstraction that the
// dependency sources return and the matcher consumes.
type PackageRef struct {
	// Scope is the npm namespace without the leading '@', empty for
	// unscoped packages.
	Scope string
	Name  string
	// Version may be empty when the source tree omits it.
	Version string
}

// DisplayName returns the package name in its npm display form,
// "@scope/name" for scoped packages and "name" otherwise.
func (p PackageRef) DisplayName() string {
	if p.Scope != "" {
		return "@" + p.Scope + "/" + p.Name
	}
	return p.Name
}

// String renders the full identifier, appending "@version" when a
// version is known.
func (p PackageRef) String() string {
	if p.Version == "" {
		return p.DisplayName()
	}
	return p.DisplayName() + "@" + p.Version
}

// Key returns the identity of this occurrence used for deduplication.
func (p PackageRef) Key() string {
	return p.Scope + "\x00" + p.Name + "\x00" + p.Version
}

// MatchKind tells how a package matched the compromised list.
type MatchKind string

const (
	// MatchExact means a list entry named this package and this exact
	// version string.
	MatchExact MatchKind = "exact"
	// MatchNameOnly means a list entry named this package with no
	// version, matching any version of it.
	MatchNameOnly MatchKind = "name"
)

func (k MatchKind) String() string {
	return string(k)
}

// Match is one finding: a resolved package together with the kind of
// list entry it matched.
type Match struct {
	Ref  PackageRef
	Kind MatchKind
}
