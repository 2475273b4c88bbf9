// Package main provides the entry point for the ownermatch CLI tool.
package main

import "github.com/openrolls/ownermatch/cmd/ownermatch/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
