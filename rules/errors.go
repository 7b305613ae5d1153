// SPDX-License-Identifier: Apache-2.0

package rules

import "fmt"

// ParseError reports a malformed compromised-list entry with the line
// number it came from in the source file.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid entry at line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
