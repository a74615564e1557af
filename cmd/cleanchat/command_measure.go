package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"cleanchat/internal/chatbox"
	"cleanchat/internal/linewrap"
	"cleanchat/internal/textmetrics"
)

type MeasureCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewMeasureCommand(stdout, stderr io.Writer) *MeasureCommand {
	return &MeasureCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *MeasureCommand) Run(args []string) error {
	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	width := fs.Int("width", chatbox.DefaultWidth, "available width in pixels")
	indent := fs.Int("indent", 0, "indent in pixels that never triggers a wrap on the first line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	texts := fs.Args()
	if len(texts) == 0 {
		return errors.New("text is required")
	}
	if *width <= 0 {
		return errors.New("width must be positive")
	}

	writer := tabwriter.NewWriter(c.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "WIDTH\tLINES\tHEIGHT\tTEXT")
	for _, text := range texts {
		lines := linewrap.LineCount(text, *width, *indent)
		fmt.Fprintf(writer, "%d\t%d\t%d\t%s\n", textmetrics.Width(text), lines, lines*textmetrics.LineHeight, text)
	}
	return writer.Flush()
}
