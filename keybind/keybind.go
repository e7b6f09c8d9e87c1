// Package keybind matches terminal key events against configurable key
// bindings and carries their help text.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys with a help entry. Keys are stored in
// normalized form, e.g. "shift+left" or "ctrl+c".
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the text shown for a binding in key help.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

// NewKeybind creates an enabled binding.
func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.SetHelp(key, desc)
	}
}

// WithDisabled creates the binding disabled.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	k.keys = make([]string, 0, len(keys))
	for _, key := range keys {
		if key = Normalize(key); key != "" {
			k.keys = append(k.keys, key)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the binding matches keys and shows up in help. A
// binding without keys is never enabled.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	return MatchesKey(EventString(event), keybinds...)
}

// MatchesKey is Matches for a key already in normalized string form.
func MatchesKey(key string, keybinds ...Keybind) bool {
	if key == "" {
		return false
	}
	for _, keybind := range keybinds {
		if keybind.Enabled() && slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}

var modifierNames = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"meta":    "meta",
}

// Modifiers are always written in this order.
var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"backtab":  "shift+tab",
}

// Normalize brings a key description into the form produced by EventString.
// It returns "" for descriptions without a primary key.
func Normalize(key string) string {
	mods := map[string]bool{}
	primary := ""
	for _, part := range strings.Split(strings.TrimSpace(key), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierNames[strings.ToLower(part)]; ok {
			mods[mod] = true
			continue
		}
		primary = normalizePrimary(part)
	}
	if primary == "" {
		return ""
	}

	if name, ok := strings.CutPrefix(primary, "shift+"); ok {
		mods["shift"] = true
		primary = name
	}
	if len(mods) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return joinKey(mods, primary)
}

func normalizePrimary(key string) string {
	if name, ok := strings.CutPrefix(key, "Rune["); ok && strings.HasSuffix(name, "]") && len(name) > 1 {
		return name[:len(name)-1]
	}
	if len([]rune(key)) == 1 {
		return key
	}
	key = strings.ToLower(key)
	if alias, ok := keyAliases[key]; ok {
		return alias
	}
	return key
}

func joinKey(mods map[string]bool, primary string) string {
	parts := make([]string, 0, len(mods)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}

// EventString returns the normalized key of a key event.
func EventString(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}

	primary, ok := keyNames[key]
	if !ok && key == tcell.KeyRune {
		primary = event.Str()
	}
	if primary == "" {
		return Normalize(event.Name())
	}

	modifiers := event.Modifiers()
	mods := map[string]bool{
		"ctrl":  modifiers&tcell.ModCtrl != 0,
		"alt":   modifiers&tcell.ModAlt != 0,
		"shift": modifiers&tcell.ModShift != 0,
		"meta":  modifiers&tcell.ModMeta != 0,
	}
	if name, ok := strings.CutPrefix(primary, "shift+"); ok {
		mods["shift"] = true
		primary = name
	}
	return joinKey(mods, primary)
}
