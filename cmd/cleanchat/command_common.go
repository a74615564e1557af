package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"cleanchat/internal/config"
	"cleanchat/internal/engine"
	"cleanchat/internal/logging"
	"cleanchat/internal/snapshot"
)

const version = "dev"

type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

// loadSettings reads settings from path, or from the default location when
// path is empty.
func loadSettings(path string) (config.Settings, error) {
	if strings.TrimSpace(path) == "" {
		return config.LoadSettings()
	}
	return config.LoadSettingsFromPath(path)
}

func loadChannels(path string) (config.ChannelsFile, error) {
	if strings.TrimSpace(path) == "" {
		return config.LoadChannels()
	}
	return config.LoadChannelsFromPath(path)
}

// newEngine builds an engine for one request. Configured channels are seeded
// first so the request's own names end up newest. The request's game state
// applies last, after any carried scroll state.
func newEngine(settings config.Settings, channels config.ChannelsFile, req snapshot.Request, logger logging.Logger) (*engine.Engine, error) {
	left, err := req.LeftCategories()
	if err != nil {
		return nil, err
	}
	state, err := req.GameState()
	if err != nil {
		return nil, err
	}
	e := engine.New(engine.Options{
		Logger: logger,
		Policy: settings.Policy(),
		Rules:  settings.BlockRules(),
	})
	channels.Seed(e.Tracker())
	req.Channels.Seed(e.Tracker())
	for _, category := range left {
		e.Tracker().Leave(category)
	}
	if req.State != nil {
		e.SetState(*req.State)
	}
	e.OnGameState(state)
	return e, nil
}

type VersionCommand struct {
	stdout  io.Writer
	version string
}

func NewVersionCommand(stdout io.Writer, version string) *VersionCommand {
	return &VersionCommand{stdout: stdout, version: version}
}

func (c *VersionCommand) Run(args []string) error {
	_, err := fmt.Fprintln(c.stdout, c.version)
	return err
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
