// SPDX-License-Identifier: Apache-2.0

// npmscan compares an npm dependency tree (or an SBOM) against a list
// of known-compromised packages and fails loudly on any hit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/compromised-scan/npmscan/internal/config"
	"github.com/compromised-scan/npmscan/report"
	"github.com/compromised-scan/npmscan/rules"
	"github.com/compromised-scan/npmscan/scan"
	"github.com/compromised-scan/npmscan/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "npmscan: %v\n", err)
		os.Exit(1)
	}

	var npmJSON, sbomPath string
	flag.StringVar(&cfg.ListFile, "l", cfg.ListFile, "path to the compromised list file")
	flag.StringVar(&cfg.ListFile, "list", cfg.ListFile, "path to the compromised list file")
	flag.StringVar(&npmJSON, "npm-json", "", "existing `npm ls --all --json` output file, or '-' for stdin; omit to run npm")
	flag.StringVar(&sbomPath, "sbom", "", "CycloneDX or SPDX JSON document to scan instead of an npm tree")
	flag.StringVar(&cfg.Format, "f", cfg.Format, "output format: text or json")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	flag.IntVar(&cfg.FailExitCode, "fail-exit-code", cfg.FailExitCode, "exit code to use when any matches are found")
	flag.BoolVar(&cfg.NoRunNpm, "no-run-npm", cfg.NoRunNpm, "never invoke npm; requires --npm-json or --sbom")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log verbosity: debug, info, warn or error")
	flag.Parse()

	os.Exit(run(cfg, npmJSON, sbomPath))
}

func run(cfg *config.Config, npmJSON, sbomPath string) int {
	if err := cfg.Validate(); err != nil {
		logrus.Error(err)
		return 1
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	set, err := loadRules(cfg.ListFile)
	if err != nil {
		logrus.Errorf("failed to parse compromised list %s: %v", cfg.ListFile, err)
		return 1
	}
	logrus.Infof("loaded %d rules from %s", set.Len(), cfg.ListFile)

	src, err := selectSource(cfg, npmJSON, sbomPath)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	logrus.Infof("collecting packages from %s", src.Name())

	refs, err := src.Packages()
	if err != nil {
		logrus.Errorf("failed to collect dependencies: %v", err)
		return 1
	}
	logrus.Infof("collected %d distinct packages", len(refs))

	rep := scan.Run(refs, set)
	if err := report.Render(os.Stdout, cfg.Format, rep, set); err != nil {
		logrus.Error(err)
		return 1
	}

	if rep.Any() {
		return cfg.FailExitCode
	}
	return 0
}

func loadRules(path string) (*rules.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rules.Load(f)
}

func selectSource(cfg *config.Config, npmJSON, sbomPath string) (source.Source, error) {
	switch {
	case sbomPath != "" && npmJSON != "":
		return nil, fmt.Errorf("--sbom and --npm-json are mutually exclusive")
	case sbomPath != "":
		return source.SBOMFile{Path: sbomPath}, nil
	case npmJSON == "-":
		return source.NpmReader{Reader: os.Stdin, Label: "stdin"}, nil
	case npmJSON != "":
		return source.NpmFile{Path: npmJSON}, nil
	case cfg.NoRunNpm:
		return nil, fmt.Errorf("--no-run-npm specified but no --npm-json or --sbom source provided")
	}
	return source.NpmCommand{Dir: "."}, nil
}
