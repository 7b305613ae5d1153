// SPDX-License-Identifier: Apache-2.0

// Package report renders a scan report for humans (text) or for
// automation (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/compromised-scan/npmscan/meta"
	"github.com/compromised-scan/npmscan/rules"
	"github.com/compromised-scan/npmscan/scan"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// record is one finding in the JSON document.
type record struct {
	MatchType string `json:"match_type"`
	Name      string `json:"name"`
	Version   string `json:"version"`
}

// document is the JSON output shape.
type document struct {
	Matches          []record `json:"matches"`
	MatchCount       int      `json:"match_count"`
	ExactCount       int      `json:"exact_count"`
	NameOnlyCount    int      `json:"name_only_count"`
	CompromisedNames []string `json:"compromised_names"`
	CompromisedExact []string `json:"compromised_exact"`
}

// Render writes the report to w in the requested format.
func Render(w io.Writer, format string, rep *scan.Report, set *rules.Set) error {
	switch format {
	case FormatText:
		return renderText(w, rep)
	case FormatJSON:
		return renderJSON(w, rep, set)
	}
	return fmt.Errorf("unknown report format %q", format)
}

func renderText(w io.Writer, rep *scan.Report) error {
	if !rep.Any() {
		_, err := fmt.Fprintln(w, "No compromised dependencies found.")
		return err
	}
	for _, m := range rep.Matches {
		var tag string
		switch m.Kind {
		case meta.MatchExact:
			tag = "[EXACT MATCH]"
		case meta.MatchNameOnly:
			tag = "[NAME MATCH ]"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", tag, m.Ref); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, rep *scan.Report, set *rules.Set) error {
	doc := document{
		Matches:          make([]record, 0, len(rep.Matches)),
		MatchCount:       len(rep.Matches),
		ExactCount:       rep.ExactCount,
		NameOnlyCount:    rep.NameOnlyCount,
		CompromisedNames: set.Names(),
		CompromisedExact: set.Exact(),
	}
	for _, m := range rep.Matches {
		doc.Matches = append(doc.Matches, record{
			MatchType: m.Kind.String(),
			Name:      m.Ref.DisplayName(),
			Version:   m.Ref.Version,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
