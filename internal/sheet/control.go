package sheet

import (
	"fmt"
	"strings"
)

type ControlKind int

const (
	ControlRefresh ControlKind = iota
	ControlBack
	ControlAccess
	ControlCursorDown
	ControlCursorUp
	ControlClick
	ControlScroll
)

// Control is a resolved navigation command for a page. X and Y are only
// meaningful for clicks, Ticks only for scrolls.
type Control struct {
	Kind  ControlKind
	X, Y  int
	Ticks int
}

var (
	Refresh    = Control{Kind: ControlRefresh}
	Back       = Control{Kind: ControlBack}
	Access     = Control{Kind: ControlAccess}
	CursorDown = Control{Kind: ControlCursorDown}
	CursorUp   = Control{Kind: ControlCursorUp}
)

func Click(x, y int) Control {
	return Control{Kind: ControlClick, X: x, Y: y}
}

func Scroll(ticks int) Control {
	return Control{Kind: ControlScroll, Ticks: ticks}
}

// IsPointer reports whether the control is addressed by screen position
// rather than by focus.
func (c Control) IsPointer() bool {
	return c.Kind == ControlClick || c.Kind == ControlScroll
}

func (c Control) String() string {
	switch c.Kind {
	case ControlRefresh:
		return "refresh"
	case ControlBack:
		return "back"
	case ControlAccess:
		return "access"
	case ControlCursorDown:
		return "cursor_down"
	case ControlCursorUp:
		return "cursor_up"
	case ControlClick:
		return fmt.Sprintf("click(%d,%d)", c.X, c.Y)
	case ControlScroll:
		return fmt.Sprintf("scroll(%d)", c.Ticks)
	default:
		return "unknown"
	}
}

// ParseControl maps a binding name to a keyboard control. Pointer controls
// carry coordinates and cannot be bound to keys, except scrolling by a
// fixed number of ticks ("scroll_up", "scroll_down").
func ParseControl(name string) (Control, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "refresh":
		return Refresh, true
	case "back":
		return Back, true
	case "access", "activate":
		return Access, true
	case "cursor_down", "down":
		return CursorDown, true
	case "cursor_up", "up":
		return CursorUp, true
	case "scroll_down":
		return Scroll(1), true
	case "scroll_up":
		return Scroll(-1), true
	}
	return Control{}, false
}
