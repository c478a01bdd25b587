package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.renderRuler())
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(labelStyle.Render("manifest has no components"))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), "  ", m.renderDetail()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderRuler() string {
	parts := make([]string, 0, len(style.Breakpoints))
	for _, bp := range style.Breakpoints {
		label := fmt.Sprintf("%s ≥%dpx", bp, bp.MinWidth())
		if bp == m.breakpoint {
			parts = append(parts, activeBreakpointStyle.Render("["+label+"]"))
			continue
		}
		parts = append(parts, rulerStyle.Render(" "+label+" "))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderList() string {
	lines := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		label := fmt.Sprintf("%s (%s)", e.ID, e.Kind)
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render(label))
			continue
		}
		lines = append(lines, itemStyle.Render(label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	e, ok := m.Selected()
	if !ok {
		return ""
	}

	width := 48
	if m.width > 0 {
		width = max(24, m.width/2)
	}

	body := strings.Join([]string{
		labelStyle.Render("all classes"),
		wrap(e.Component.Classes(), width),
		"",
		labelStyle.Render(fmt.Sprintf("effective at %s", m.breakpoint)),
		wrap(e.Component.ClassesAt(m.breakpoint), width),
	}, "\n")
	return panelStyle.Render(body)
}

// wrap breaks a class string on token boundaries.
func wrap(classes string, width int) string {
	var lines []string
	var line strings.Builder
	for _, token := range strings.Fields(classes) {
		if line.Len() > 0 && line.Len()+1+len(token) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(token)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
