package input

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"quote":     '"',
}

// Special key names accepted in the [special_keys] section
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"escape": tcell.KeyEscape,
	"ctrl_c": tcell.KeyCtrlC,
}

// keymapFile is the on-disk keymap shape.
type keymapFile struct {
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override
// KeyTable. Only keys present in the data are populated. Returns an
// error on unknown action names, invalid key names, or parse failure.
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if len(raw.Keys) > 0 {
		kt.Runes = make(map[rune]Action, len(raw.Keys))
		for keyName, actionName := range raw.Keys {
			r, err := parseRuneName(keyName)
			if err != nil {
				return nil, fmt.Errorf("section [keys]: %w", err)
			}
			action, ok := actionNames[actionName]
			if !ok {
				return nil, fmt.Errorf("section [keys]: unknown action %q", actionName)
			}
			kt.Runes[r] = action
		}
	}

	if len(raw.SpecialKeys) > 0 {
		kt.Special = make(map[tcell.Key]Action, len(raw.SpecialKeys))
		for keyName, actionName := range raw.SpecialKeys {
			key, ok := specialKeyNames[keyName]
			if !ok {
				return nil, fmt.Errorf("section [special_keys]: unknown key %q", keyName)
			}
			action, ok := actionNames[actionName]
			if !ok {
				return nil, fmt.Errorf("section [special_keys]: unknown action %q", actionName)
			}
			kt.Special[key] = action
		}
	}

	return kt, nil
}

func parseRuneName(name string) (rune, error) {
	if r, ok := runeAliases[name]; ok {
		return r, nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return 0, fmt.Errorf("unknown key name %q", name)
	}
	return runes[0], nil
}
