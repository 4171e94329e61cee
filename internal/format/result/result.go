// Package result renders the final list state for stdout.
package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/minui-list/internal/menu"
)

// Mode selects what is written on success.
type Mode string

const (
	ModeSelected Mode = "selected"
	ModeState    Mode = "state"
)

// DefaultItemKey names the items array in state output when no item key was
// used on input.
const DefaultItemKey = "items"

var (
	ErrSerialize   = errors.New("serialize failed")
	ErrNoSelection = errors.New("no item selected")
	ErrUnknownMode = errors.New("unknown output mode")
)

// ParseMode validates a mode name, ignoring case and surrounding space.
// Empty means selected.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return ModeSelected, nil
	case ModeSelected, ModeState:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Options controls serialization.
type Options struct {
	Mode    Mode
	ItemKey string
}

// Serialize renders items and the selected index according to opts. In
// state mode only fields present on input (or required to describe the
// item) are written, so the output diffs cleanly against the source.
func Serialize(items []menu.Item, selected int, opts Options) (string, error) {
	switch opts.Mode {
	case ModeSelected, "":
		if selected < 0 || selected >= len(items) {
			return "", fmt.Errorf("%w: %w: index %d of %d items", ErrSerialize, ErrNoSelection, selected, len(items))
		}
		return items[selected].Name, nil
	case ModeState:
		key := opts.ItemKey
		if key == "" {
			key = DefaultItemKey
		}
		out, err := encode(stateDocument{key: key, items: stateItems(items), selected: selected}, "    ")
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrSerialize, err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("%w: %w: %q", ErrSerialize, ErrUnknownMode, opts.Mode)
	}
}

type stateItem struct {
	Name             string   `json:"name"`
	IsHeader         *bool    `json:"is_header,omitempty"`
	Enabled          *bool    `json:"enabled,omitempty"`
	SelectedOption   *int     `json:"selected_option,omitempty"`
	SupportsEnabling *bool    `json:"supports_enabling,omitempty"`
	Options          []string `json:"options,omitempty"`
}

func stateItems(items []menu.Item) []stateItem {
	out := make([]stateItem, 0, len(items))
	for _, it := range items {
		entry := stateItem{Name: it.Name}
		if it.IsHeader() {
			entry.IsHeader = ptr(true)
			out = append(out, entry)
			continue
		}
		if it.Enabled.Set || it.SupportsEnabling.Set {
			entry.Enabled = ptr(it.IsEnabled())
		}
		if it.SelectedOption.Set {
			entry.SelectedOption = ptr(it.SelectedOption.Value)
		}
		if it.SupportsEnabling.Set {
			entry.SupportsEnabling = ptr(it.SupportsEnabling.Value)
		}
		if it.HasOptions() {
			entry.Options = it.Options
		}
		out = append(out, entry)
	}
	return out
}

// stateDocument keeps the items key ahead of "selected"; the key name is
// only known at runtime so a struct tag cannot carry it.
type stateDocument struct {
	key      string
	items    []stateItem
	selected int
}

func (d stateDocument) MarshalJSON() ([]byte, error) {
	key, err := encode(d.key, "")
	if err != nil {
		return nil, err
	}
	items, err := encode(d.items, "")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(items)
	buf.WriteString(`,"selected":`)
	buf.WriteString(strconv.Itoa(d.selected))
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encode marshals without HTML escaping so names round-trip verbatim.
func encode(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func ptr[T any](v T) *T {
	return &v
}
