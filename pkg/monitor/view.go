package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const defaultWidth = 80

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder

	title := fmt.Sprintf("ft monitor — %s build", m.Cfg.Mode())
	if m.Cfg.KillSwitch {
		title += "  [kill switch ON]"
	}
	b.WriteString(headerBarStyle.Render(title))
	b.WriteString("\n\n")

	if m.SearchMode || m.SearchInput.Value() != "" {
		b.WriteString("  / " + m.SearchInput.View())
		b.WriteString("\n\n")
	}

	if len(m.Rows) == 0 {
		b.WriteString(helpStyle.Render("  no features match"))
		b.WriteString("\n")
	}

	for i, row := range m.Rows {
		if row.Header != "" {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(" " + categoryHeaderStyle.Render(row.Header))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderFeatureRow(i, row, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Err != nil {
		b.WriteString(errStyle.Render("error: " + m.Err.Error()))
		b.WriteString("\n")
	} else if m.Status != "" {
		b.WriteString(statusStyle.Render(m.Status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("space toggle • u unset • R reset all • / filter • j/k move • q quit"))

	return b.String()
}

func (m Model) renderFeatureRow(index int, row Row, width int) string {
	marker := "  "
	if index == m.Cursor {
		marker = cursorStyle.Render("❯ ")
	}

	state := disabledStyle.Render("○")
	if row.Enabled {
		state = enabledStyle.Render("●")
	}

	id := row.Feature.ID
	if index == m.Cursor {
		id = cursorStyle.Render(id)
	}

	source := string(row.Source)
	if style, ok := sourceStyles[row.Source]; ok {
		source = style.Render("(" + source + ")")
	}

	suffix := ""
	if locked, _ := m.locked(row.Feature); locked {
		suffix = lockedStyle.Render("  [locked]")
	}

	line := fmt.Sprintf(" %s%s %s  %s %s%s", marker, state, id, helpStyle.Render(row.Feature.Name), source, suffix)
	return ansi.Truncate(line, width, "…")
}
