// Package main is the single-binary entrypoint for Keel.
// Keel is a local engagement engine: one binary, one SQLite file.
package main

import "github.com/keel-app/keel/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
