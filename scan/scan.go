// SPDX-License-Identifier: Apache-2.0

// Package scan matches resolved packages against the compromised list
// and assembles the ordered report.
package scan

import (
	"sort"

	"github.com/compromised-scan/npmscan/meta"
	"github.com/compromised-scan/npmscan/rules"
	"github.com/sirupsen/logrus"
)

// Report is the terminal artifact of a scan: every package that
// matched the compromised list, in deterministic order, plus per-kind
// counts for exit-code selection by the caller.
type Report struct {
	Matches       []meta.Match
	ExactCount    int
	NameOnlyCount int
}

// Any reports whether the scan found anything.
func (r *Report) Any() bool {
	return len(r.Matches) > 0
}

// Run matches every resolved package against the rule set and returns
// the report. Matches are sorted by display name, then version, so the
// output is stable regardless of the traversal order of the underlying
// tree.
func Run(refs []meta.PackageRef, set *rules.Set) *Report {
	report := &Report{}
	for _, ref := range refs {
		kind, ok := set.Match(ref)
		if !ok {
			continue
		}
		logrus.Debugf("%s match: %s", kind, ref)
		report.Matches = append(report.Matches, meta.Match{Ref: ref, Kind: kind})
		switch kind {
		case meta.MatchExact:
			report.ExactCount++
		case meta.MatchNameOnly:
			report.NameOnlyCount++
		}
	}

	sort.Slice(report.Matches, func(i, j int) bool {
		a, b := report.Matches[i].Ref, report.Matches[j].Ref
		if a.DisplayName() != b.DisplayName() {
			return a.DisplayName() < b.DisplayName()
		}
		return a.Version < b.Version
	})
	return report
}
