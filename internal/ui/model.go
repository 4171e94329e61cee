package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/minui-list/internal/theme"
	"github.com/atomicstack/minui-list/internal/ui/command"
	uistate "github.com/atomicstack/minui-list/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Labels are the footer texts shown next to each role's button.
type Labels struct {
	Confirm string
	Cancel  string
	Action  string
	Enable  string
}

// DefaultLabels returns the stock footer texts.
func DefaultLabels() Labels {
	return Labels{Confirm: "SELECT", Cancel: "BACK", Action: "ACTION", Enable: "ENABLE"}
}

// Options configures a Model.
type Options struct {
	Title    string
	Width    int
	Bindings command.Bindings
	Labels   Labels
	// RepeatWindow overrides the auto-repeat detection window.
	RepeatWindow time.Duration
	// Now overrides the clock used for repeat detection.
	Now func() time.Time
}

// Model implements the Bubble Tea model for the list picker.
type Model struct {
	list       *uistate.List
	bus        *command.Bus
	bindings   command.Bindings
	keys       keyMap
	hints      []key.Binding
	help       help.Model
	title      string
	width      int
	fixedWidth bool
	repeat     repeatTracker
	now        func() time.Time

	view  string
	dirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps list in a Bubble Tea model.
func NewModel(list *uistate.List, opts Options) *Model {
	bindings := opts.Bindings
	if bindings == (command.Bindings{}) {
		bindings = command.DefaultBindings()
	}
	window := opts.RepeatWindow
	if window <= 0 {
		window = defaultRepeatWindow
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	h := help.New()
	if styles.FooterKey != nil {
		h.Styles.ShortKey = *styles.FooterKey
	}
	if styles.Footer != nil {
		h.Styles.ShortDesc = *styles.Footer
		h.Styles.ShortSeparator = *styles.Footer
	}
	m := &Model{
		list:     list,
		bus:      command.New(),
		bindings: bindings,
		keys:     newKeyMap(),
		help:     h,
		title:    opts.Title,
		repeat:   repeatTracker{window: window},
		now:      now,
		dirty:    true,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	m.hints = m.footerHints(mergeLabels(opts.Labels))
	m.registerHandlers()
	return m
}

func mergeLabels(l Labels) Labels {
	def := DefaultLabels()
	if l.Confirm == "" {
		l.Confirm = def.Confirm
	}
	if l.Cancel == "" {
		l.Cancel = def.Cancel
	}
	if l.Action == "" {
		l.Action = def.Action
	}
	if l.Enable == "" {
		l.Enable = def.Enable
	}
	return l
}

// footerHints lists assigned roles right to left in the order the handheld
// footer shows them: enable, action, cancel, confirm.
func (m *Model) footerHints(labels Labels) []key.Binding {
	roles := []struct {
		button command.Button
		label  string
	}{
		{m.bindings.Enable, labels.Enable},
		{m.bindings.Action, labels.Action},
		{m.bindings.Cancel, labels.Cancel},
		{m.bindings.Confirm, labels.Confirm},
	}
	hints := make([]key.Binding, 0, len(roles))
	for _, role := range roles {
		face, ok := m.keys.faceKey(role.button)
		if !ok {
			continue
		}
		hints = append(hints, key.NewBinding(
			key.WithKeys(face.Keys()...),
			key.WithHelp(string(role.button), role.label),
		))
	}
	return hints
}

// List exposes the engine driven by the model.
func (m *Model) List() *uistate.List {
	return m.list
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.list == nil {
		return nil
	}
	if m.list.Done() {
		return tea.Quit
	}
	cmd := m.keys.command(keyMsg, m.bindings)
	if cmd == command.None {
		return nil
	}
	repeat := false
	if cmd.Directional() {
		repeat = m.repeat.observe(cmd, m.now())
	} else {
		m.repeat.reset()
	}
	if m.bus.Execute(m.list, command.Request{Command: cmd, Repeat: repeat}) {
		m.dirty = true
	}
	if m.list.Done() {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth && resize.Width != m.width {
		m.width = resize.Width
		m.help.Width = resize.Width
		m.dirty = true
	}
	return nil
}
