// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"bufio"
	"io"
	"strings"
)

// Line is one surviving entry of a compromised-list file, with the
// 1-based line number it occupied so parse errors can point at the
// original file.
type Line struct {
	Number int
	Text   string
}

// ReadLines reads a compromised-list file, dropping blank lines and
// '#' comment lines and trimming surrounding whitespace. A byte order
// mark at the start of the first line is ignored.
func ReadLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	var out []Line
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimPrefix(scanner.Text(), "\uFEFF")
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, Line{Number: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load is a convenience wrapper combining ReadLines and Build.
func Load(r io.Reader) (*Set, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Build(lines)
}
