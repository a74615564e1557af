package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cleanchat/internal/blocking"
	"cleanchat/internal/types"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))
	cfg, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	if cfg.IndentMode() != types.IndentModeMessage {
		t.Fatalf("unexpected indent mode: %q", cfg.IndentMode())
	}
	policy := cfg.Policy()
	if !policy.MoveGroupIronFromClan {
		t.Fatalf("expected group iron move to default on")
	}
	for _, category := range types.Categories() {
		if policy.RemovalEnabled(category) {
			t.Fatalf("expected removal off by default for %s", category)
		}
	}
	rules := cfg.BlockRules()
	if !rules[blocking.RuleClanInstruction] || !rules[blocking.RuleWelcome] {
		t.Fatalf("expected instruction and welcome rules on by default: %#v", rules)
	}
	if rules[blocking.RuleFriendsChatAttempting] || rules[blocking.RuleFriendsChatNowTalking] {
		t.Fatalf("expected friends chat join notices off by default: %#v", rules)
	}
}

func TestLoadSettingsFromTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)

	dataDir := filepath.Join(home, ".cleanchat")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := `
[logging]
level = "debug"

[layout]
indent_mode = "name"

[channels]
max_retained_names = 3

[channels.clan]
remove_name = true

[channels.friends_chat]
substitute = "FC"
remove_now_talking = true

[channels.group_iron]
move_from_clan_tab = false

[messages]
remove_welcome = false
`
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	if cfg.MaxRetainedNames() != 3 {
		t.Fatalf("unexpected max retained names: %d", cfg.MaxRetainedNames())
	}
	policy := cfg.Policy()
	if policy.Indent != types.IndentModeName {
		t.Fatalf("unexpected indent: %q", policy.Indent)
	}
	if !policy.RemovalEnabled(types.CategoryClan) {
		t.Fatalf("expected clan removal enabled")
	}
	if got := policy.Channel(types.CategoryFriendsChat).Substitute; got != "FC" {
		t.Fatalf("unexpected friends chat substitute: %q", got)
	}
	if policy.MoveGroupIronFromClan {
		t.Fatalf("expected group iron move disabled")
	}
	rules := cfg.BlockRules()
	if rules[blocking.RuleWelcome] {
		t.Fatalf("expected welcome rule disabled")
	}
	if !rules[blocking.RuleFriendsChatNowTalking] {
		t.Fatalf("expected now talking rule enabled")
	}
	if !rules[blocking.RuleClanInstruction] {
		t.Fatalf("expected untouched defaults to survive")
	}
}

func TestBlockListEnablesNamedRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[channels.friends_chat]
remove_instruction = false

[messages]
remove_welcome = false
block = ["Welcome", " friends_chat_instruction ", "not_a_rule"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadSettingsFromPath(path)
	if err != nil {
		t.Fatalf("LoadSettingsFromPath: %v", err)
	}
	rules := cfg.BlockRules()
	if !rules[blocking.RuleWelcome] || !rules[blocking.RuleFriendsChatInstruction] {
		t.Fatalf("expected listed rules enabled: %#v", rules)
	}
	if _, ok := rules[blocking.Rule("not_a_rule")]; ok {
		t.Fatalf("expected unknown rule ignored")
	}
}

func TestLoadSettingsRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[layout\nindent_mode ="), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadSettingsFromPath(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSettingsFallbacks(t *testing.T) {
	cfg := Settings{}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level fallback: %q", cfg.LogLevel())
	}
	if cfg.IndentMode() != types.IndentModeMessage {
		t.Fatalf("unexpected indent fallback: %q", cfg.IndentMode())
	}
	if cfg.MaxRetainedNames() != types.DefaultMaxRetainedNames {
		t.Fatalf("unexpected max retained fallback: %d", cfg.MaxRetainedNames())
	}
}

type recordedObservation struct {
	category types.Category
	name     string
}

type recordingObserver struct {
	seen []recordedObservation
}

func (r *recordingObserver) Observe(category types.Category, name string) {
	r.seen = append(r.seen, recordedObservation{category: category, name: name})
}

func TestChannelsSeedInPriorityOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.toml")
	content := `
[group_iron]
names = ["Iron Bros"]

[clan]
names = ["Old Clan", " Old Clan ", ""]
current = "Clan Name"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	file, err := LoadChannelsFromPath(path)
	if err != nil {
		t.Fatalf("LoadChannelsFromPath: %v", err)
	}
	observer := &recordingObserver{}
	file.Seed(observer)
	want := []recordedObservation{
		{types.CategoryClan, "Old Clan"},
		{types.CategoryClan, "Clan Name"},
		{types.CategoryGroupIron, "Iron Bros"},
	}
	if len(observer.seen) != len(want) {
		t.Fatalf("unexpected observations: %#v", observer.seen)
	}
	for i := range want {
		if observer.seen[i] != want[i] {
			t.Fatalf("observation %d: got %#v want %#v", i, observer.seen[i], want[i])
		}
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func() { changed <- struct{}{} })
	}()

	deadline := time.After(5 * time.Second)
	for {
		if err := os.WriteFile(path, []byte("[logging]\nlevel = \"warn\"\n"), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		select {
		case <-changed:
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Watch: %v", err)
			}
			return
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatalf("timed out waiting for change notification")
		}
	}
}
