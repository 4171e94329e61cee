package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/minui-list/internal/logging/events"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Format names an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// StdinPath is the path sentinel meaning "read all of standard input".
const StdinPath = "-"

// ParseFormat validates a format name. Empty means json.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Source identifies where list data is read from.
type Source struct {
	Path string
	// Stdin replaces os.Stdin when Path is StdinPath.
	Stdin io.Reader
}

func (s Source) read() ([]byte, error) {
	if s.Path == StdinPath {
		r := s.Stdin
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrUnreadable, err)
		}
		return data, nil
	}
	if strings.TrimSpace(s.Path) == "" {
		return nil, fmt.Errorf("%w: no path given", ErrUnreadable)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return data, nil
}

// LoadOptions controls how a source is interpreted.
type LoadOptions struct {
	Format  Format
	ItemKey string
}

// Load reads src and turns it into a normalized list. Every error is fatal;
// no partial list is returned.
func Load(src Source, opts LoadOptions) (*List, error) {
	events.Load.Start(src.Path, string(opts.Format), opts.ItemKey)
	data, err := src.read()
	if err != nil {
		events.Load.Error(err)
		return nil, err
	}
	list, err := Parse(data, opts)
	if err != nil {
		events.Load.Error(err)
		return nil, err
	}
	events.Load.Done(string(opts.Format), len(list.Items), list.HasOptions)
	return list, nil
}

// Parse interprets raw bytes according to opts.
func Parse(data []byte, opts LoadOptions) (*List, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	if format == FormatText {
		return parseText(data), nil
	}

	var root interface{}
	if format == FormatYAML {
		root, err = decodeYAML(data)
	} else {
		root, err = decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}
	return parseDocument(root, opts.ItemKey)
}

func parseText(data []byte) *List {
	lines := strings.Split(string(data), "\n")
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, NewItem(line))
	}
	return &List{Items: items}
}

// decodeJSON accepts comments and trailing commas.
func decodeJSON(data []byte) (interface{}, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()
	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return root, nil
}

func decodeYAML(data []byte) (interface{}, error) {
	var root interface{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return root, nil
}

func parseDocument(root interface{}, itemKey string) (*List, error) {
	raw, err := itemsArray(root, itemKey)
	if err != nil {
		return nil, err
	}
	items := make([]Item, len(raw))
	for i, entry := range raw {
		items[i] = normalizeItem(i, entry)
	}
	list := &List{
		Items:      items,
		HasOptions: AnyOptions(items),
	}
	if obj, ok := root.(map[string]interface{}); ok {
		list.Selected = restoreSelection(obj, items)
	}
	return list, nil
}

func itemsArray(root interface{}, itemKey string) ([]interface{}, error) {
	if itemKey == "" {
		arr, ok := root.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: root is %s", ErrItemsMissing, describe(root))
		}
		return arr, nil
	}
	obj, ok := root.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: root is %s, cannot look up %q", ErrItemsMissing, describe(root), itemKey)
	}
	value, ok := obj[itemKey]
	if !ok {
		return nil, fmt.Errorf("%w: key %q not found", ErrItemsMissing, itemKey)
	}
	arr, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: key %q is %s", ErrItemsMissing, itemKey, describe(value))
	}
	return arr, nil
}

func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case []interface{}:
		return "an array"
	case map[string]interface{}:
		return "an object"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		if _, ok := asInt(v); ok {
			return "a number"
		}
		return fmt.Sprintf("%T", v)
	}
}
