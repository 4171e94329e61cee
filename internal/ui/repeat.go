package ui

import (
	"time"

	"github.com/atomicstack/minui-list/internal/ui/command"
)

const defaultRepeatWindow = 150 * time.Millisecond

// repeatTracker tells fresh presses from terminal auto-repeat: the same
// directional command arriving within window of the previous one counts as a
// repeat.
type repeatTracker struct {
	window time.Duration
	last   command.Command
	at     time.Time
}

func (r *repeatTracker) observe(cmd command.Command, now time.Time) bool {
	repeat := cmd == r.last && !r.at.IsZero() && now.Sub(r.at) <= r.window
	r.last = cmd
	r.at = now
	return repeat
}

func (r *repeatTracker) reset() {
	r.last = command.None
	r.at = time.Time{}
}
