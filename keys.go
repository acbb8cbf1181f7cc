package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bekirdag/sheetfm/internal/sheet"
)

type action int

const (
	actionControl action = iota
	actionSort
	actionToggleSide
	actionToggleSelect
	actionFind
	actionYank
	actionOpen
	actionHelp
	actionQuit
)

// command is a key press resolved to something the file manager does.
type command struct {
	name   string
	action action
	ctrl   sheet.Control
	column int
}

var commandHelp = map[string]string{
	"cursor_down":   "down",
	"cursor_up":     "up",
	"access":        "open",
	"back":          "back",
	"refresh":       "refresh",
	"scroll_down":   "page down",
	"scroll_up":     "page up",
	"sort_name":     "sort by name",
	"sort_time":     "sort by time",
	"sort_size":     "sort by size",
	"toggle_side":   "switch side",
	"toggle_select": "select",
	"find":          "find",
	"yank":          "copy path",
	"open":          "run opener",
	"help":          "help",
	"quit":          "quit",
}

var defaultBindings = map[string]string{
	"j":         "cursor_down",
	"down":      "cursor_down",
	"k":         "cursor_up",
	"up":        "cursor_up",
	"l":         "access",
	"enter":     "access",
	"right":     "access",
	"h":         "back",
	"backspace": "back",
	"left":      "back",
	"r":         "refresh",
	"pgdown":    "scroll_down",
	"pgup":      "scroll_up",
	"1":         "sort_name",
	"2":         "sort_time",
	"3":         "sort_size",
	"tab":       "toggle_side",
	" ":         "toggle_select",
	"/":         "find",
	"y":         "yank",
	"o":         "open",
	"?":         "help",
	"q":         "quit",
	"ctrl+c":    "quit",
}

func parseCommand(name string) (command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if ctrl, ok := sheet.ParseControl(name); ok {
		return command{name: name, action: actionControl, ctrl: ctrl}, true
	}
	cmd := command{name: name}
	switch name {
	case "sort_name":
		cmd.action, cmd.column = actionSort, 0
	case "sort_time":
		cmd.action, cmd.column = actionSort, 1
	case "sort_size":
		cmd.action, cmd.column = actionSort, 2
	case "toggle_side":
		cmd.action = actionToggleSide
	case "toggle_select":
		cmd.action = actionToggleSelect
	case "find":
		cmd.action = actionFind
	case "yank":
		cmd.action = actionYank
	case "open":
		cmd.action = actionOpen
	case "help":
		cmd.action = actionHelp
	case "quit":
		cmd.action = actionQuit
	default:
		return command{}, false
	}
	return cmd, true
}

type boundCommand struct {
	command command
	binding key.Binding
}

// keyResolver maps key presses to commands. It plays the part of a keymap
// script: the core only ever sees the resolved commands.
type keyResolver struct {
	bound []boundCommand
}

// newKeyResolver builds the key map from the defaults with overrides applied
// on top. An override bound to "" or "none" unbinds the key. Unknown command
// names are reported and skipped.
func newKeyResolver(overrides map[string]string) (*keyResolver, error) {
	keys := make(map[string]string, len(defaultBindings)+len(overrides))
	for k, name := range defaultBindings {
		keys[k] = name
	}
	var errs []error
	for k, name := range overrides {
		name = strings.TrimSpace(name)
		if name == "" || strings.EqualFold(name, "none") {
			delete(keys, k)
			continue
		}
		if _, ok := parseCommand(name); !ok {
			errs = append(errs, fmt.Errorf("binding %q: unknown command %q", k, name))
			continue
		}
		keys[k] = name
	}

	byCommand := make(map[string][]string)
	for k, name := range keys {
		name = strings.ToLower(name)
		byCommand[name] = append(byCommand[name], k)
	}
	names := make([]string, 0, len(byCommand))
	for name := range byCommand {
		names = append(names, name)
	}
	sort.Strings(names)

	r := &keyResolver{}
	for _, name := range names {
		cmd, _ := parseCommand(name)
		ks := byCommand[name]
		sort.Strings(ks)
		desc := commandHelp[name]
		if desc == "" {
			desc = name
		}
		r.bound = append(r.bound, boundCommand{
			command: cmd,
			binding: key.NewBinding(key.WithKeys(ks...), key.WithHelp(helpKeys(ks), desc)),
		})
	}
	return r, errors.Join(errs...)
}

func helpKeys(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return strings.Join(out, "/")
}

func (r *keyResolver) Resolve(msg tea.KeyMsg) (command, bool) {
	for _, b := range r.bound {
		if key.Matches(msg, b.binding) {
			return b.command, true
		}
	}
	return command{}, false
}

func (r *keyResolver) binding(name string) (key.Binding, bool) {
	for _, b := range r.bound {
		if b.command.name == name {
			return b.binding, true
		}
	}
	return key.Binding{}, false
}

func (r *keyResolver) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, name := range []string{"toggle_side", "access", "back", "find", "help", "quit"} {
		if b, ok := r.binding(name); ok {
			out = append(out, b)
		}
	}
	return out
}

func (r *keyResolver) FullHelp() [][]key.Binding {
	groups := [][]string{
		{"cursor_down", "cursor_up", "scroll_down", "scroll_up", "refresh"},
		{"access", "back", "toggle_side"},
		{"sort_name", "sort_time", "sort_size"},
		{"toggle_select", "find", "yank", "open"},
		{"help", "quit"},
	}
	var out [][]key.Binding
	for _, group := range groups {
		var col []key.Binding
		for _, name := range group {
			if b, ok := r.binding(name); ok {
				col = append(col, b)
			}
		}
		if len(col) > 0 {
			out = append(out, col)
		}
	}
	return out
}
