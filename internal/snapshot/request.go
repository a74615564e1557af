// Package snapshot reads and writes rebuild requests: a host snapshot plus
// the tab, channel names and scroll state a pass needs.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cleanchat/internal/config"
	"cleanchat/internal/scrollbar"
	"cleanchat/internal/types"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q", raw)
	}
}

// FormatFromPath picks the format from the file extension, defaulting to
// JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type Request struct {
	Tab      string              `json:"tab,omitempty" yaml:"tab,omitempty"`
	Game     string              `json:"game_state,omitempty" yaml:"game_state,omitempty"`
	Channels config.ChannelsFile `json:"channels" yaml:"channels"`
	Left     []string            `json:"left,omitempty" yaml:"left,omitempty"`
	State    *scrollbar.State    `json:"state,omitempty" yaml:"state,omitempty"`
	Snapshot types.Snapshot      `json:"snapshot" yaml:"snapshot"`
}

// ChatTab resolves the request tab. It accepts a tab name or the raw client
// variable value; an empty tab means All.
func (r Request) ChatTab() (types.ChatTab, error) {
	raw := strings.TrimSpace(r.Tab)
	if raw == "" {
		return types.ChatTabAll, nil
	}
	if tab, ok := types.ParseChatTab(raw); ok {
		return tab, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return types.ChatTabAll, fmt.Errorf("unknown tab %q", r.Tab)
	}
	return types.TabOf(value), nil
}

// GameState resolves the client state the snapshot was taken in. An empty
// value means logged in.
func (r Request) GameState() (types.GameState, error) {
	state, ok := types.ParseGameState(r.Game)
	if !ok {
		return "", fmt.Errorf("unknown game state %q", r.Game)
	}
	return state, nil
}

// LeftCategories resolves the channels the player has left since the names
// were recorded.
func (r Request) LeftCategories() ([]types.Category, error) {
	out := make([]types.Category, 0, len(r.Left))
	for _, raw := range r.Left {
		category, ok := types.ParseCategory(raw)
		if !ok {
			return nil, fmt.Errorf("unknown channel %q", raw)
		}
		out = append(out, category)
	}
	return out, nil
}

func Load(path string) (Request, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Request{}, errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, err
	}
	req, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return Request{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return req, nil
}

func Decode(data []byte, format Format) (Request, error) {
	var req Request
	if len(bytes.TrimSpace(data)) == 0 {
		return req, errors.New("empty request")
	}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &req); err != nil {
			return Request{}, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return Request{}, err
		}
	}
	return req, nil
}

// Encode writes v, a request or a result, in the given format.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
