// Package main provides the entry point for the tripweave CLI tool.
package main

import (
	"github.com/tripweave/tripweave/cmd/tripweave/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
