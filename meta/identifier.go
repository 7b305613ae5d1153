// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed package identifier.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid package identifier %q: %s", e.Text, e.Reason)
}

// ParseIdentifier parses an npm package identifier of one of the forms
//
//	name
//	name@version
//	@scope/name
//	@scope/name@version
//
// For scoped identifiers the scope is everything between the leading
// '@' and the first '/'. The remainder is split on the LAST '@' when
// one is present, so "@scope/name@1.0.0@extra" parses as name
// "@scope/name@1.0.0" with version "extra". An empty Version means no
// version was given.
func ParseIdentifier(text string) (PackageRef, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return PackageRef{}, &ParseError{Text: text, Reason: "empty identifier"}
	}

	var ref PackageRef
	rest := s
	if strings.HasPrefix(s, "@") {
		slash := strings.Index(s, "/")
		if slash < 0 {
			return PackageRef{}, &ParseError{Text: text, Reason: "scoped identifier without '/'"}
		}
		ref.Scope = s[1:slash]
		if ref.Scope == "" {
			return PackageRef{}, &ParseError{Text: text, Reason: "empty scope"}
		}
		rest = s[slash+1:]
	}

	if at := strings.LastIndex(rest, "@"); at > 0 {
		ref.Name = rest[:at]
		ref.Version = rest[at+1:]
		if err := validateVersion(ref.Version); err != "" {
			return PackageRef{}, &ParseError{Text: text, Reason: err}
		}
	} else if at == 0 {
		// rest like "@1.0.0": a scoped identifier whose name is empty.
		return PackageRef{}, &ParseError{Text: text, Reason: "empty name"}
	} else {
		ref.Name = rest
	}

	if ref.Name == "" {
		return PackageRef{}, &ParseError{Text: text, Reason: "empty name"}
	}
	return ref, nil
}

// validateVersion returns a non-empty reason when the version part of
// an identifier is syntactically unacceptable.
func validateVersion(v string) string {
	if v == "" {
		return "empty version"
	}
	if strings.Contains(v, "/") {
		return "version contains '/'"
	}
	c := v[0]
	if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return "version does not start with an alphanumeric character"
	}
	return ""
}

// SplitName splits a package display name into scope and name. Unlike
// ParseIdentifier it never fails: names that do not follow the
// "@scope/name" form are returned whole, so a single oddly named tree
// node cannot abort a scan.
func SplitName(display string) (scope, name string) {
	if strings.HasPrefix(display, "@") {
		if slash := strings.Index(display, "/"); slash > 1 {
			return display[1:slash], display[slash+1:]
		}
	}
	return "", display
}
