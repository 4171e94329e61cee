// Package ui contains the Bubble Tea program that drives the list picker.
// The Model owns the list engine for the lifetime of the program and keeps
// Update small: each key press is mapped to a physical button or direction,
// the button to a logical command through the configured bindings, and the
// command bus applies exactly one engine operation.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry.
//   - Key presses resolve to command.Command values (keys.go). Directional
//     commands are classified as fresh presses or auto-repeats (repeat.go) so
//     the engine can stop at list edges while a key is held.
//   - When the engine reports a terminal outcome the model returns tea.Quit;
//     the caller reads the outcome and final state once Run returns.
//
// Rendering:
//   - View output is cached and rebuilt only when an operation reported that
//     a redraw is needed or the terminal was resized.
//   - Rows come from the engine's visible window; the option column is
//     aligned with internal/format/table and styles come from internal/theme.
package ui
