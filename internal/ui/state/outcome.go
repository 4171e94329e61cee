package state

// Outcome records why the interactive loop stopped.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeConfirm
	OutcomeCancel
	OutcomeMenu
	OutcomeAction
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirm:
		return "confirm"
	case OutcomeCancel:
		return "cancel"
	case OutcomeMenu:
		return "menu"
	case OutcomeAction:
		return "action"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "none"
	}
}
