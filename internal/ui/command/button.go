package command

import (
	"errors"
	"fmt"
)

// Button is a physical face button.
type Button string

const (
	ButtonNone Button = ""
	ButtonA    Button = "A"
	ButtonB    Button = "B"
	ButtonX    Button = "X"
	ButtonY    Button = "Y"
)

var (
	ErrInvalidButton   = errors.New("invalid button")
	ErrDuplicateButton = errors.New("button assigned to more than one role")
	ErrMissingButton   = errors.New("button required")
)

// ParseButton accepts A, B, X or Y. An empty string leaves the role unassigned.
func ParseButton(name string) (Button, error) {
	switch b := Button(name); b {
	case ButtonNone, ButtonA, ButtonB, ButtonX, ButtonY:
		return b, nil
	default:
		return ButtonNone, fmt.Errorf("%w %q (expected A, B, X or Y)", ErrInvalidButton, name)
	}
}

// Bindings assigns the logical roles to physical buttons.
type Bindings struct {
	Confirm Button
	Cancel  Button
	Action  Button
	Enable  Button
}

// DefaultBindings confirms with A and cancels with B.
func DefaultBindings() Bindings {
	return Bindings{Confirm: ButtonA, Cancel: ButtonB}
}

// Validate checks that confirm and cancel are assigned, every button is one
// of A, B, X or Y, and no button serves two roles.
func (b Bindings) Validate() error {
	roles := []struct {
		name     string
		button   Button
		required bool
	}{
		{"confirm", b.Confirm, true},
		{"cancel", b.Cancel, true},
		{"action", b.Action, false},
		{"enable", b.Enable, false},
	}
	seen := make(map[Button]string, len(roles))
	for _, role := range roles {
		if role.button == ButtonNone {
			if role.required {
				return fmt.Errorf("%s: %w", role.name, ErrMissingButton)
			}
			continue
		}
		if _, err := ParseButton(string(role.button)); err != nil {
			return fmt.Errorf("%s: %w", role.name, err)
		}
		if other, ok := seen[role.button]; ok {
			return fmt.Errorf("%w: %s used for %s and %s", ErrDuplicateButton, role.button, other, role.name)
		}
		seen[role.button] = role.name
	}
	return nil
}

// Resolve maps a button press to the command of the role it is bound to.
func (b Bindings) Resolve(button Button) Command {
	if button == ButtonNone {
		return None
	}
	switch button {
	case b.Confirm:
		return Confirm
	case b.Cancel:
		return Cancel
	case b.Action:
		return Action
	case b.Enable:
		return ToggleEnable
	default:
		return None
	}
}
