package main

import (
	"fmt"
	"os"
)

const usageText = `cleanchat rebuilds chat log snapshots with channel tags cleaned up.

Usage:
  cleanchat <command> [flags]

Commands:
  rebuild   run a pass over one or more snapshot files
  measure   print the pixel width and wrapped line count of text
  sample    write a synthetic snapshot request
  preview   browse a rebuilt snapshot in the terminal
  config    print configuration (effective or defaults)
  version   print the build version
  help      show help

Flags:
  -h, --help   show help

Rebuild flags:
  --tab NAME        override the request tab (all, game, public, private, channel, clan, trade, closed)
  --format FORMAT   json|yaml|report
  --diff            include a transcript diff
  --jobs N          files processed at once

Examples:
  cleanchat sample --lines 40 > log.json
  cleanchat rebuild --format report --diff log.json
  cleanchat measure --width 486 "[Clan Name] Zezima: hello"
  cleanchat config --default --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
