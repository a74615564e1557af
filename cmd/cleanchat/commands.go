package main

import (
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	runProgram func(model tea.Model, send func(*tea.Program)) error
	version    string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		runProgram: runTeaProgram,
		version:    buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"rebuild": NewRebuildCommand(wiring.stdout, wiring.stderr),
		"measure": NewMeasureCommand(wiring.stdout, wiring.stderr),
		"sample":  NewSampleCommand(wiring.stdout, wiring.stderr),
		"preview": NewPreviewCommand(wiring.stderr, wiring.runProgram),
		"config":  NewConfigCommand(wiring.stdout, wiring.stderr),
		"version": NewVersionCommand(wiring.stdout, wiring.version),
	}
}

func runTeaProgram(model tea.Model, attach func(*tea.Program)) error {
	p := tea.NewProgram(model)
	if attach != nil {
		attach(p)
	}
	_, err := p.Run()
	return err
}
