package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"cleanchat/internal/config"
	"cleanchat/internal/engine"
	"cleanchat/internal/logging"
	"cleanchat/internal/report"
	"cleanchat/internal/snapshot"
	"cleanchat/internal/types"
)

const rebuildFormatReport = "report"

type RebuildCommand struct {
	stdout io.Writer
	stderr io.Writer
}

type rebuildOutput struct {
	File   string        `json:"file" yaml:"file"`
	Result engine.Result `json:"result" yaml:"result"`
	Diff   string        `json:"diff,omitempty" yaml:"diff,omitempty"`
}

type rebuildOptions struct {
	tab      string
	diff     bool
	settings config.Settings
	channels config.ChannelsFile
	logger   logging.Logger
}

func NewRebuildCommand(stdout, stderr io.Writer) *RebuildCommand {
	return &RebuildCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *RebuildCommand) Run(args []string) error {
	fs := flag.NewFlagSet("rebuild", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	tab := fs.String("tab", "", "selected chat tab, overrides the request")
	format := fs.String("format", string(snapshot.FormatJSON), "output format: json|yaml|report")
	diff := fs.Bool("diff", false, "include a transcript diff")
	jobs := fs.Int("jobs", runtime.GOMAXPROCS(0), "files processed at once")
	width := fs.Int("width", 80, "report wrap width")
	configPath := fs.String("config", "", "settings file (default ~/.cleanchat/config.toml)")
	channelsPath := fs.String("channels", "", "channel names file (default ~/.cleanchat/channels.toml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		return errors.New("at least one snapshot file is required")
	}
	if *jobs <= 0 {
		return errors.New("jobs must be positive")
	}

	reportMode := strings.EqualFold(strings.TrimSpace(*format), rebuildFormatReport)
	var outFormat snapshot.Format
	if !reportMode {
		parsed, err := snapshot.ParseFormat(*format)
		if err != nil {
			return err
		}
		outFormat = parsed
	}

	settings, err := loadSettings(*configPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	channels, err := loadChannels(*channelsPath)
	if err != nil {
		return fmt.Errorf("load channels: %w", err)
	}
	opts := rebuildOptions{
		tab:      *tab,
		diff:     *diff,
		settings: settings,
		channels: channels,
		logger:   logging.New(c.stderr, logging.ParseLevel(settings.LogLevel())),
	}

	outputs, err := rebuildAll(context.Background(), files, *jobs, opts)
	if err != nil {
		return err
	}
	if reportMode {
		return writeReports(c.stdout, outputs, *width)
	}
	if len(outputs) == 1 {
		return snapshot.Encode(c.stdout, outputs[0], outFormat)
	}
	return snapshot.Encode(c.stdout, outputs, outFormat)
}

// rebuildAll runs every file through its own engine. Results keep the order
// of files.
func rebuildAll(ctx context.Context, files []string, jobs int, opts rebuildOptions) ([]rebuildOutput, error) {
	outputs := make([]rebuildOutput, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := rebuildFile(path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func rebuildFile(path string, opts rebuildOptions) (rebuildOutput, error) {
	req, err := snapshot.Load(path)
	if err != nil {
		return rebuildOutput{}, err
	}
	if opts.tab != "" {
		req.Tab = opts.tab
	}
	tab, err := req.ChatTab()
	if err != nil {
		return rebuildOutput{}, err
	}

	logger := logging.ForFile(opts.logger, path)
	e, err := newEngine(opts.settings, opts.channels, req, logger)
	if err != nil {
		return rebuildOutput{}, fmt.Errorf("%s: %w", path, err)
	}
	result := e.Rebuild(req.Snapshot, tab)
	out := rebuildOutput{File: path, Result: result}
	if opts.diff {
		diff, err := report.Diff(filepath.Base(path), req.Snapshot, rebuiltSnapshot(req.Snapshot, result))
		if err != nil {
			return rebuildOutput{}, err
		}
		out.Diff = diff
	}
	return out, nil
}

func rebuiltSnapshot(original types.Snapshot, result engine.Result) types.Snapshot {
	if result.Skipped {
		return original
	}
	return result.Snapshot
}

func writeReports(w io.Writer, outputs []rebuildOutput, width int) error {
	for i, out := range outputs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		text := report.Render(report.Summary(filepath.Base(out.File), out.Result), width)
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
		if out.Diff != "" {
			if _, err := fmt.Fprint(w, "\n"+out.Diff); err != nil {
				return err
			}
		}
	}
	return nil
}
