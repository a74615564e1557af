package types

// Element is one host render element. The container and scrollbar track are
// described separately on the snapshot.
type Element struct {
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Hidden bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

type Container struct {
	Height       int `json:"height" yaml:"height"`
	ScrollY      int `json:"scroll_y" yaml:"scroll_y"`
	ScrollHeight int `json:"scroll_height" yaml:"scroll_height"`
}

type ScrollbarTrack struct {
	Height int `json:"height" yaml:"height"`
}

// Snapshot is the flat element array the host hands over after a rebuild.
// Lines holds the dynamic children in groups of four; ClickTargets holds one
// hit box per group.
type Snapshot struct {
	Container    *Container     `json:"container,omitempty" yaml:"container,omitempty"`
	Scrollbar    ScrollbarTrack `json:"scrollbar" yaml:"scrollbar"`
	Lines        []Element      `json:"lines" yaml:"lines"`
	ClickTargets []Element      `json:"click_targets" yaml:"click_targets"`
}

func CloneSnapshot(in Snapshot) Snapshot {
	out := in
	if in.Container != nil {
		container := *in.Container
		out.Container = &container
	}
	if in.Lines != nil {
		out.Lines = append([]Element{}, in.Lines...)
	}
	if in.ClickTargets != nil {
		out.ClickTargets = append([]Element{}, in.ClickTargets...)
	}
	return out
}

type ElementKind string

const (
	ElementKindLine        ElementKind = "line"
	ElementKindClickTarget ElementKind = "click_target"
)

type ElementRef struct {
	Kind  ElementKind `json:"kind" yaml:"kind"`
	Index int         `json:"index" yaml:"index"`
}

// Mutation carries only the fields a pass changed on one element.
type Mutation struct {
	Target ElementRef `json:"target" yaml:"target"`
	Text   *string    `json:"text,omitempty" yaml:"text,omitempty"`
	X      *int       `json:"x,omitempty" yaml:"x,omitempty"`
	Y      *int       `json:"y,omitempty" yaml:"y,omitempty"`
	Width  *int       `json:"width,omitempty" yaml:"width,omitempty"`
	Height *int       `json:"height,omitempty" yaml:"height,omitempty"`
	Hidden *bool      `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

func (m Mutation) Empty() bool {
	return m.Text == nil && m.X == nil && m.Y == nil && m.Width == nil && m.Height == nil && m.Hidden == nil
}

// Apply returns el with the mutation's fields written over it.
func (m Mutation) Apply(el Element) Element {
	if m.Text != nil {
		el.Text = *m.Text
	}
	if m.X != nil {
		el.X = *m.X
	}
	if m.Y != nil {
		el.Y = *m.Y
	}
	if m.Width != nil {
		el.Width = *m.Width
	}
	if m.Height != nil {
		el.Height = *m.Height
	}
	if m.Hidden != nil {
		el.Hidden = *m.Hidden
	}
	return el
}

// DiffElement reports what changed between before and after, or false when
// nothing did.
func DiffElement(ref ElementRef, before, after Element) (Mutation, bool) {
	m := Mutation{Target: ref}
	if before.Text != after.Text {
		text := after.Text
		m.Text = &text
	}
	if before.X != after.X {
		x := after.X
		m.X = &x
	}
	if before.Y != after.Y {
		y := after.Y
		m.Y = &y
	}
	if before.Width != after.Width {
		w := after.Width
		m.Width = &w
	}
	if before.Height != after.Height {
		h := after.Height
		m.Height = &h
	}
	if before.Hidden != after.Hidden {
		hidden := after.Hidden
		m.Hidden = &hidden
	}
	return m, !m.Empty()
}
