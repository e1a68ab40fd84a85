// Package main provides flexcalc, a tool that lays out YAML scenes with the
// flex engine and prints the resulting geometry.
//
// Usage:
//
//	flexcalc [flags] scene.yaml   Lay out a scene and print it
//	flexcalc version              Print version information
//	flexcalc help                 Show help
//
// Examples:
//
//	flexcalc dashboard.yaml            Draw the scene as box outlines
//	flexcalc -W 120 -o table app.yaml  Lay out at 120 columns, print a table
//	flexcalc --watch app.yaml          Redraw whenever the file changes
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

const usage = `flexcalc - lay out flexbox scenes on a terminal cell grid

Usage:
  flexcalc [flags] <scene.yaml>
  flexcalc <command>

Commands:
  version     Print version information
  help        Show this help message

Flags:
%s
Configuration is read from %s when present.
Flags override configuration values; the scene viewport is used when no
width or height is given on the command line.

Examples:
  flexcalc dashboard.yaml              Draw the scene as box outlines
  flexcalc -W 120 -H 40 app.yaml       Lay out in a 120x40 viewport
  flexcalc -o table app.yaml           Print node geometry as a table
  flexcalc -o plain --stats app.yaml   Indented geometry plus pass statistics
  flexcalc --watch app.yaml            Redraw whenever the file changes
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "flexcalc version %s\n", version)
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	}

	if err := runLayout(args, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, usage, newFlagSet(&options{}).FlagUsages(), configPathForHelp())
}
