package ui

import (
	"strings"

	"github.com/atomicstack/minui-list/internal/format/table"
	"github.com/atomicstack/minui-list/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	itemIndicator = "▌"
	emptyMessage  = "(no entries)"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model. The rendered frame is cached until an operation
// reports that something visible changed.
func (m *Model) View() string {
	if m.dirty || m.view == "" {
		m.view = m.render()
		m.dirty = false
	}
	return m.view
}

func (m *Model) render() string {
	lines := make([]styledLine, 0, 16)
	if m.title != "" {
		lines = append(lines, styledLine{text: m.title, style: styles.Title})
	}
	if m.list == nil || m.list.Len() == 0 {
		lines = append(lines, styledLine{text: emptyMessage, style: styles.Info})
	} else {
		lines = append(lines, m.itemLines()...)
	}
	lines = applyWidth(lines, m.width)
	out := renderLines(lines)
	if footer := m.help.ShortHelpView(m.hints); footer != "" {
		out += "\n\n" + footer
	}
	return out
}

func (m *Model) itemLines() []styledLine {
	visible := m.list.Visible()
	rows := make([][]string, len(visible))
	for i, it := range visible {
		rows[i] = rowCells(it, m.list.HasOptions)
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})

	lines := make([]styledLine, len(visible))
	for i, it := range visible {
		idx := m.list.FirstVisible + i
		lines[i] = m.buildItemLine(it, formatted[i], idx == m.list.Selected)
	}
	return lines
}

func rowCells(it menu.Item, withOptions bool) []string {
	label := it.Name
	if !it.IsHeader() && it.CanToggle() {
		mark := " "
		if it.IsEnabled() {
			mark = "x"
		}
		label = "[" + mark + "] " + label
	}
	if !withOptions {
		return []string{label}
	}
	option := ""
	if opt, ok := it.CurrentOption(); ok && !it.IsHeader() {
		option = "‹ " + opt + " ›"
	}
	return []string{label, option}
}

func (m *Model) buildItemLine(it menu.Item, text string, selected bool) styledLine {
	if it.IsHeader() {
		return styledLine{text: "  " + text, style: styles.SectionHeader}
	}
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if !it.IsEnabled() {
		lineStyle = styles.DisabledItem
	}
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := itemIndicator + " " + text
	if selected && m.width > 0 {
		if pad := m.width - table.CellWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the indicator
	}
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || table.CellWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
