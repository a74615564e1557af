// Package scrollbar recomputes the chat scrollbar the way the host's own
// resize, scroll and dragger scripts would, against the rebuilt scroll
// height.
package scrollbar

import "cleanchat/internal/types"

const (
	// TrackInset is the space taken by the arrow buttons at both ends.
	TrackInset     = 32
	MinThumbHeight = 10
	// DraggerTop is the first pixel the thumb may occupy.
	DraggerTop = 16
	// BottomCapOffset positions the lower cap relative to the thumb end.
	BottomCapOffset = 5
	// BaselineScrollHeight is used when the container reports a negative
	// height, as it does on the first frame after login.
	BaselineScrollHeight = 114
)

type Input struct {
	Tab             types.ChatTab
	ContainerHeight int
	ScrollY         int
	ScrollHeight    int
	TrackHeight     int
}

type Geometry struct {
	ScrollHeight int  `json:"scroll_height" yaml:"scroll_height"`
	ScrollY      int  `json:"scroll_y" yaml:"scroll_y"`
	ThumbHeight  int  `json:"thumb_height" yaml:"thumb_height"`
	ThumbY       int  `json:"thumb_y" yaml:"thumb_y"`
	TopCapY      int  `json:"top_cap_y" yaml:"top_cap_y"`
	BottomCapY   int  `json:"bottom_cap_y" yaml:"bottom_cap_y"`
	Restored     bool `json:"restored,omitempty" yaml:"restored,omitempty"`
}

// Emulate runs resize, offset and dragger placement in order and returns the
// resulting geometry and the state for the next pass.
func Emulate(in Input, prev State) (Geometry, State) {
	g := Geometry{ScrollHeight: in.ScrollHeight}
	g.ThumbHeight = thumbHeight(in.TrackHeight, in.ContainerHeight, in.ScrollHeight)

	switch {
	case prev.Restorable(in.Tab):
		g.ScrollY = max(g.ScrollHeight-prev.Diff, 0)
		g.Restored = true
	case in.ContainerHeight < 0:
		g.ScrollY = 0
		g.ScrollHeight = BaselineScrollHeight
	default:
		g.ScrollY = clamp(in.ScrollY, 0, max(g.ScrollHeight-in.ContainerHeight, 1))
	}

	g.ThumbY = thumbY(in.TrackHeight, g.ThumbHeight, in.ContainerHeight, g.ScrollHeight, g.ScrollY)
	g.TopCapY = g.ThumbY
	g.BottomCapY = g.ThumbY + g.ThumbHeight - BottomCapOffset

	next := State{
		Diff: g.ScrollHeight - g.ScrollY,
		Tab:  in.Tab,
		Set:  true,
	}
	return g, next
}

func thumbHeight(track, containerHeight, scrollHeight int) int {
	effective := scrollHeight
	if effective <= 0 {
		effective = containerHeight
	}
	height := track - TrackInset
	if effective > 0 {
		height = (track - TrackInset) * containerHeight / effective
	}
	return max(height, MinThumbHeight)
}

func thumbY(track, thumb, containerHeight, scrollHeight, scrollY int) int {
	scrollRange := max(scrollHeight-containerHeight, 1)
	travel := track - TrackInset - thumb
	return max(DraggerTop+travel*scrollY/scrollRange, DraggerTop)
}

func clamp(v, lo, hi int) int {
	return max(min(v, hi), lo)
}
