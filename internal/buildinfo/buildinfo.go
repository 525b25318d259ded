// Package buildinfo exposes version metadata for the t9search CLI. Values can
// be overridden at build time via -ldflags; the cli package values are used
// when these are empty.
package buildinfo

import (
	"strings"

	"github.com/flarebyte/t9search/cli"
)

var (
	// Version is the semantic version or custom string. Defaults to cli.Version or "dev".
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build date. Falls back to cli.Date.
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
)

// Summary returns a concise single-line version string such as
// "1.2.3 (commit=abc1234, date=2026-10-15)".
func Summary() string {
	v := Version
	if v == "" {
		v = cli.Version
	}
	if v == "" {
		v = "dev"
	}

	d := Date
	if d == "" {
		d = cli.Date
	}

	var parts []string
	if Commit != "" {
		parts = append(parts, "commit="+shortCommit(Commit))
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) == 0 {
		return v
	}
	return v + " (" + strings.Join(parts, ", ") + ")"
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
