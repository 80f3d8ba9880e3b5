package input

// Action is a semantic game command parsed from terminal input.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotateCW
	ActionRotateCCW
	ActionDrop
	ActionQuit
)

// Action names accepted in keymap files.
var actionNames = map[string]Action{
	"none":       ActionNone,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"rotate_cw":  ActionRotateCW,
	"rotate_ccw": ActionRotateCCW,
	"drop":       ActionDrop,
	"quit":       ActionQuit,
}

func (a Action) String() string {
	for name, action := range actionNames {
		if action == a {
			return name
		}
	}
	return "unknown"
}
