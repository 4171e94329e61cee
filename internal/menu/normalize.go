package menu

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/atomicstack/minui-list/internal/logging"
	"go.uber.org/zap"
)

const (
	keyName             = "name"
	keyOptions          = "options"
	keySelectedOption   = "selected_option"
	keyIsHeader         = "is_header"
	keySupportsEnabling = "supports_enabling"
	keyEnabled          = "enabled"
	keySelected         = "selected"
)

func normalizeItem(index int, raw interface{}) Item {
	switch v := raw.(type) {
	case string:
		return NewItem(v)
	case map[string]interface{}:
		return normalizeObject(index, v)
	default:
		logging.Warn("unsupported item value, using empty name",
			zap.Int("index", index),
			zap.String("value", describe(raw)),
		)
		return NewItem("")
	}
}

func normalizeObject(index int, obj map[string]interface{}) Item {
	name, _ := obj[keyName].(string)
	item := NewItem(name)

	if raw, ok := obj[keyOptions].([]interface{}); ok {
		options := make([]string, 0, len(raw))
		for i, entry := range raw {
			opt, ok := entry.(string)
			if !ok {
				logging.Warn("skipping non-string option",
					zap.Int("index", index),
					zap.String("name", name),
					zap.Int("option", i),
				)
				continue
			}
			options = append(options, opt)
		}
		if len(options) > 0 {
			item.Options = options
		}
	}

	if raw, present := obj[keySelectedOption]; present {
		if value, ok := asInt(raw); ok {
			item.SelectedOption = Present(clampOption(index, name, value, len(item.Options)))
		} else {
			logging.Warn("ignoring non-numeric selected_option",
				zap.Int("index", index),
				zap.String("name", name),
				zap.String("value", describe(raw)),
			)
		}
	}

	item.Header = boolField(obj, keyIsHeader, false)
	item.SupportsEnabling = boolField(obj, keySupportsEnabling, false)
	item.Enabled = boolField(obj, keyEnabled, true)

	if item.Enabled.Set && !item.Enabled.Value && !item.SupportsEnabling.Value {
		logging.Warn("item disabled without supporting enabling",
			zap.Int("index", index),
			zap.String("name", name),
		)
	}
	return item
}

func clampOption(index int, name string, value, count int) int {
	if count == 0 {
		if value != 0 {
			logging.Warn("selected_option set on item without options",
				zap.Int("index", index),
				zap.String("name", name),
				zap.Int("value", value),
			)
		}
		return 0
	}
	clamped := value
	if clamped < 0 {
		clamped = 0
	}
	if clamped > count-1 {
		clamped = count - 1
	}
	if clamped != value {
		logging.Warn("selected_option out of range, clamping",
			zap.Int("index", index),
			zap.String("name", name),
			zap.Int("value", value),
			zap.Int("clamped", clamped),
		)
	}
	return clamped
}

func boolField(obj map[string]interface{}, key string, fallback bool) Field[bool] {
	if v, ok := obj[key].(bool); ok {
		return Present(v)
	}
	return Absent(fallback)
}

// restoreSelection reads a root-level "selected" index, as written by the
// state output mode.
func restoreSelection(obj map[string]interface{}, items []Item) Field[int] {
	raw, present := obj[keySelected]
	if !present {
		return Absent(0)
	}
	idx, ok := asInt(raw)
	if !ok || idx < 0 || idx >= len(items) || items[idx].IsHeader() {
		logging.Warn("ignoring invalid initial selection",
			zap.String("value", fmt.Sprint(raw)),
			zap.Int("items", len(items)),
		)
		return Absent(0)
	}
	return Present(idx)
}

// asInt converts JSON and YAML numbers to int, keeping the integral part.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil && !math.IsInf(f, 0) {
			return 0, false
		}
		return floatToInt(f)
	case int:
		return n, true
	case int64:
		if n > math.MaxInt {
			return math.MaxInt, true
		}
		if n < math.MinInt {
			return math.MinInt, true
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return math.MaxInt, true
		}
		return int(n), true
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

// floatToInt truncates f, saturating at the int range so huge values keep
// their sign.
func floatToInt(f float64) (int, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= math.MaxInt:
		return math.MaxInt, true
	case f <= math.MinInt:
		return math.MinInt, true
	default:
		return int(f), true
	}
}
