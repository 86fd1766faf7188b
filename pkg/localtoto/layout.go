package localtoto

import "github.com/localtoto/localtoto/pkg/localtoto/constants"

// layout positions the parts of a screen in a window of the given size.
type layout struct {
	width, height int32
	header        int32 // title bar height
	lineHeight    int32
	rowHeight     int32
	margin        int32
}

func newLayout(width, height int32) layout {
	return layout{
		width:      width,
		height:     height,
		header:     constants.DefaultRowHeight + constants.DefaultRowHeight/4,
		lineHeight: constants.DefaultRowHeight / 2,
		rowHeight:  constants.DefaultRowHeight,
		margin:     constants.DefaultMargin,
	}
}

// listTop is where the first row starts below lines of body text.
func (l layout) listTop(lines int) int32 {
	return l.header + constants.DefaultTitleSpacing + int32(lines)*l.lineHeight + l.margin/2
}

// visibleRows is how many rows fit below lines of body text, at least one.
func (l layout) visibleRows(lines int) int {
	n := int((l.height - l.listTop(lines) - l.margin) / l.rowHeight)
	if n < 1 {
		return 1
	}
	return n
}

// firstRow returns the first row to draw so focus stays on screen, keeping
// the previous offset when focus is already visible.
func (l layout) firstRow(previous, focus, rows, lines int) int {
	visible := l.visibleRows(lines)
	first := previous
	if focus >= 0 {
		if focus < first {
			first = focus
		}
		if focus >= first+visible {
			first = focus - visible + 1
		}
	}
	if last := rows - visible; first > last {
		first = last
	}
	if first < 0 {
		first = 0
	}
	return first
}
