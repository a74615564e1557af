package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"cleanchat/internal/blocking"
	"cleanchat/internal/chatbox"
	"cleanchat/internal/config"
	"cleanchat/internal/snapshot"
	"cleanchat/internal/types"
)

type SampleCommand struct {
	stdout io.Writer
	stderr io.Writer
}

var sampleSenders = []string{"Zezima", "Woox", "Lynx Titan", "B0aty", "Settled"}

var sampleMessages = []string{
	"anyone doing nex tonight?",
	"gz on the pet",
	"selling 2k shark at ge, pm me",
	"what world is the star on, I have been looking for it for a while now and cannot find it anywhere",
	"brb",
}

func NewSampleCommand(stdout, stderr io.Writer) *SampleCommand {
	return &SampleCommand{
		stdout: stdout,
		stderr: stderr,
	}
}

func (c *SampleCommand) Run(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	lines := fs.Int("lines", 12, "chat lines to generate")
	clan := fs.String("clan", "Clan Name", "clan channel name")
	friends := fs.String("friends-chat", "Fc", "friends chat channel name")
	tab := fs.String("tab", "all", "selected chat tab")
	timestamps := fs.Bool("timestamps", true, "prefix channel lines with a timestamp")
	format := fs.String("format", string(snapshot.FormatJSON), "output format: json|yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *lines < 0 {
		return errors.New("lines must not be negative")
	}
	outFormat, err := snapshot.ParseFormat(*format)
	if err != nil {
		return err
	}
	if _, ok := types.ParseChatTab(*tab); !ok {
		return fmt.Errorf("unknown tab %q", *tab)
	}

	req := snapshot.Request{
		Tab: strings.ToLower(strings.TrimSpace(*tab)),
		Channels: config.ChannelsFile{
			Clan:        config.ChannelNames{Current: *clan},
			FriendsChat: config.ChannelNames{Current: *friends},
		},
		Snapshot: buildSample(*lines, *clan, *friends, *timestamps).Snapshot(),
	}
	return snapshot.Encode(c.stdout, req, outFormat)
}

// buildSample lays out a deterministic log: a login burst followed by
// rotating clan, friends chat and public lines.
func buildSample(lines int, clan, friends string, timestamps bool) *chatbox.Builder {
	b := chatbox.NewBuilder()
	if lines >= 3 {
		b.Orphan("Welcome to Old School RuneScape.")
		b.Notice(blocking.ClanInstruction)
	}
	for i := 0; b.Len() < lines; i++ {
		sender := sampleSenders[i%len(sampleSenders)]
		message := sampleMessages[i%len(sampleMessages)]
		prefix := ""
		if timestamps {
			prefix = fmt.Sprintf("[%02d:%02d] ", 6+i/60, i%60)
		}
		switch i % 3 {
		case 0:
			b.Chat(prefix+"["+clan+"] ", i%2 == 0, sender+":", message)
		case 1:
			b.Broadcast(prefix+"["+friends+"] "+sender+":", message)
		default:
			b.Chat(prefix, false, sender+":", message)
		}
	}
	return b.ScrollY(0)
}
