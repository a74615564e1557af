package transcript

// StackPadding is the gap the host leaves between the content and the
// container edge.
const StackPadding = 2

// Stack places visible groups top to bottom and hides blocked ones. groups
// is in decode order (newest first). It returns the new scroll height.
func Stack(groups []*Group, containerHeight int) int {
	visible := make([]*Group, 0, len(groups))
	var blocked []*Group
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g.Blocked {
			blocked = append(blocked, g)
			continue
		}
		visible = append(visible, g)
	}

	total := 0
	for _, g := range visible {
		total += g.MessageHeight()
	}

	overflow := total >= containerHeight
	y := 0
	if !overflow {
		y = containerHeight - total - StackPadding
	}
	for _, g := range visible {
		g.place(y)
		y += g.MessageHeight()
	}
	if overflow {
		y += StackPadding
	}

	for _, g := range blocked {
		g.hide()
	}

	if y < containerHeight {
		y = containerHeight
	}
	return y
}
