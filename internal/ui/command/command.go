package command

// Command is one abstract navigation or termination request.
type Command int

const (
	None Command = iota
	MoveUp
	MoveDown
	PageLeft
	PageRight
	ToggleEnable
	Confirm
	Cancel
	Action
	Menu
	Interrupt
)

var commandNames = map[Command]string{
	None:         "none",
	MoveUp:       "move-up",
	MoveDown:     "move-down",
	PageLeft:     "page-left",
	PageRight:    "page-right",
	ToggleEnable: "toggle-enable",
	Confirm:      "confirm",
	Cancel:       "cancel",
	Action:       "action",
	Menu:         "menu",
	Interrupt:    "interrupt",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Directional reports whether the command is subject to key auto-repeat.
func (c Command) Directional() bool {
	switch c {
	case MoveUp, MoveDown, PageLeft, PageRight:
		return true
	default:
		return false
	}
}
