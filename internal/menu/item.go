package menu

// Item is one normalized list entry.
type Item struct {
	Name             string
	Header           Field[bool]
	Enabled          Field[bool]
	SupportsEnabling Field[bool]
	Options          []string
	SelectedOption   Field[int]
}

// NewItem returns an item with only its name set and every other field at
// its default.
func NewItem(name string) Item {
	return Item{
		Name:    name,
		Enabled: Absent(true),
	}
}

// NewHeader returns a non-selectable separator row.
func NewHeader(name string) Item {
	it := NewItem(name)
	it.Header = Present(true)
	return it
}

func (i Item) IsHeader() bool {
	return i.Header.Value
}

func (i Item) IsEnabled() bool {
	return i.Enabled.Value
}

// CanToggle reports whether the enabled state may be flipped.
func (i Item) CanToggle() bool {
	return i.SupportsEnabling.Value
}

func (i Item) HasOptions() bool {
	return len(i.Options) > 0
}

// OptionIndex returns the selected option index clamped to the option list.
func (i Item) OptionIndex() int {
	n := len(i.Options)
	if n == 0 {
		return 0
	}
	idx := i.SelectedOption.Value
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// CurrentOption returns the option currently selected, if any.
func (i Item) CurrentOption() (string, bool) {
	if len(i.Options) == 0 {
		return "", false
	}
	return i.Options[i.OptionIndex()], true
}

// Clone returns a copy that shares no mutable state with i.
func (i Item) Clone() Item {
	dup := i
	if i.Options != nil {
		dup.Options = append([]string(nil), i.Options...)
	}
	return dup
}

// CloneItems copies items so callers can mutate the result freely.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	for idx, it := range items {
		dup[idx] = it.Clone()
	}
	return dup
}

// List is the outcome of loading a source.
type List struct {
	Items      []Item
	HasOptions bool
	// Selected is the initial selection restored from a previous state dump.
	Selected Field[int]
}

// AnyOptions reports whether at least one item defines options.
func AnyOptions(items []Item) bool {
	for _, it := range items {
		if it.HasOptions() {
			return true
		}
	}
	return false
}
