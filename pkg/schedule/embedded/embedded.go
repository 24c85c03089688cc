// Package embedded compiles the default trip dataset into the binary so the
// pipeline runs with zero external files.
package embedded

import (
	"embed"
	"io/fs"

	"github.com/tripweave/tripweave/pkg/schedule"
)

// dataFS embeds the default trip schedule and its side tables at build time.
//
//go:embed data/*
var dataFS embed.FS

// FS returns the embedded dataset rooted at the table files, suitable for
// schedule.Load.
func FS() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// Unreachable unless the embed directive and the directory
		// name disagree at build time.
		panic(err)
	}
	return sub
}

// Load reads the compiled-in tables.
func Load() (*schedule.Tables, error) {
	return schedule.Load(FS())
}
