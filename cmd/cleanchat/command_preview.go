package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"cleanchat/internal/config"
	"cleanchat/internal/logging"
	"cleanchat/internal/preview"
	"cleanchat/internal/snapshot"
)

type PreviewCommand struct {
	stderr     io.Writer
	runProgram func(model tea.Model, attach func(*tea.Program)) error
}

func NewPreviewCommand(stderr io.Writer, runProgram func(model tea.Model, attach func(*tea.Program)) error) *PreviewCommand {
	return &PreviewCommand{
		stderr:     stderr,
		runProgram: runProgram,
	}
}

func (c *PreviewCommand) Run(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	tab := fs.String("tab", "", "selected chat tab, overrides the request")
	configPath := fs.String("config", "", "settings file (default ~/.cleanchat/config.toml)")
	channelsPath := fs.String("channels", "", "channel names file (default ~/.cleanchat/channels.toml)")
	watch := fs.Bool("watch", true, "reload settings when the file changes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("exactly one snapshot file is required")
	}
	path := fs.Arg(0)

	req, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	if *tab != "" {
		req.Tab = *tab
	}
	chatTab, err := req.ChatTab()
	if err != nil {
		return err
	}
	settings, err := loadSettings(*configPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	channels, err := loadChannels(*channelsPath)
	if err != nil {
		return fmt.Errorf("load channels: %w", err)
	}

	logger, closer, err := openPreviewLog(settings)
	if err != nil {
		return err
	}
	defer closer.Close()

	e, err := newEngine(settings, channels, req, logger)
	if err != nil {
		return err
	}
	model := preview.New(preview.Options{
		Engine:   e,
		Snapshot: req.Snapshot,
		Tab:      chatTab,
		Title:    filepath.Base(path),
		Logger:   logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var attach func(*tea.Program)
	if *watch {
		watchPath := *configPath
		if watchPath == "" {
			watchPath, err = config.ConfigPath()
			if err != nil {
				return err
			}
		}
		attach = func(p *tea.Program) {
			go func() {
				err := config.Watch(ctx, watchPath, func() {
					reloaded, err := config.LoadSettingsFromPath(watchPath)
					p.Send(preview.ReloadMsg{Settings: reloaded, Err: err})
				})
				if err != nil {
					logger.Warn("config_watch_failed", logging.F("path", watchPath), logging.Err(err))
				}
			}()
		}
	}
	return c.runProgram(model, attach)
}

func openPreviewLog(settings config.Settings) (logging.Logger, io.Closer, error) {
	path, err := config.PreviewLogPath()
	if err != nil {
		return nil, nil, err
	}
	return logging.OpenFile(path, logging.ParseLevel(settings.LogLevel()))
}
