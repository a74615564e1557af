package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	"cleanchat/internal/config"

	toml "github.com/pelletier/go-toml/v2"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"

	configScopeSettings = "settings"
	configScopeChannels = "channels"
)

type configOutput struct {
	ConfigPath   string               `json:"config_path,omitempty" toml:"config_path,omitempty"`
	ChannelsPath string               `json:"channels_path,omitempty" toml:"channels_path,omitempty"`
	Settings     *config.Settings     `json:"settings,omitempty" toml:"settings,omitempty"`
	Channels     *config.ChannelsFile `json:"channels,omitempty" toml:"channels,omitempty"`
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	var scopes stringList
	fs.Var(&scopes, "scope", "scope to print: settings|channels|all (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	resolvedScopes, err := resolveConfigScopes(scopes)
	if err != nil {
		return err
	}
	payload, err := c.buildOutput(*defaults, resolvedScopes)
	if err != nil {
		return err
	}
	return writeConfigOutput(c.stdout, resolvedFormat, projectedConfigPayload(payload, resolvedScopes))
}

func (c *ConfigCommand) buildOutput(defaults bool, scopes map[string]struct{}) (configOutput, error) {
	out := configOutput{}

	if scopeSelected(scopes, configScopeSettings) {
		path, err := config.ConfigPath()
		if err != nil {
			return configOutput{}, err
		}
		settings := config.DefaultSettings()
		if !defaults {
			settings, err = config.LoadSettings()
			if err != nil {
				return configOutput{}, err
			}
		}
		settings.Logging.Level = settings.LogLevel()
		settings.Layout.IndentMode = string(settings.IndentMode())
		settings.Channels.MaxRetainedNames = settings.MaxRetainedNames()
		out.ConfigPath = path
		out.Settings = &settings
	}

	if scopeSelected(scopes, configScopeChannels) {
		path, err := config.ChannelsPath()
		if err != nil {
			return configOutput{}, err
		}
		var channels config.ChannelsFile
		if !defaults {
			channels, err = config.LoadChannels()
			if err != nil {
				return configOutput{}, err
			}
		}
		out.ChannelsPath = path
		out.Channels = &channels
	}

	return out, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

// projectedConfigPayload prints a single scope as the file it comes from.
func projectedConfigPayload(payload configOutput, scopes map[string]struct{}) any {
	if len(scopes) != 1 {
		return payload
	}
	if scopeSelected(scopes, configScopeSettings) && payload.Settings != nil {
		return *payload.Settings
	}
	if scopeSelected(scopes, configScopeChannels) && payload.Channels != nil {
		return *payload.Channels
	}
	return payload
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}

func allConfigScopes() map[string]struct{} {
	return map[string]struct{}{
		configScopeSettings: {},
		configScopeChannels: {},
	}
}

func resolveConfigScopes(values []string) (map[string]struct{}, error) {
	if len(values) == 0 {
		return allConfigScopes(), nil
	}
	out := map[string]struct{}{}
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			scope, err := normalizeConfigScope(part)
			if err != nil {
				return nil, err
			}
			if scope == "all" {
				return allConfigScopes(), nil
			}
			out[scope] = struct{}{}
		}
	}
	return out, nil
}

func normalizeConfigScope(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all":
		return "all", nil
	case configScopeSettings, "config", "core":
		return configScopeSettings, nil
	case configScopeChannels, "names":
		return configScopeChannels, nil
	default:
		return "", errors.New("invalid scope: must be settings, channels, or all")
	}
}

func scopeSelected(scopes map[string]struct{}, scope string) bool {
	_, ok := scopes[scope]
	return ok
}
