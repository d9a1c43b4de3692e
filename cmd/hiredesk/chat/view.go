package chat

import (
	"fmt"
	"strings"

	"hiredesk/internal/entity"
	"hiredesk/internal/palette"
	"hiredesk/internal/transcript"
)

// View renders the full chat screen.
func (m Model) View() string {
	if !m.ready {
		return "Starting hiredesk..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.machine.IsOpen() {
		b.WriteString(m.paletteView())
	} else {
		b.WriteString(m.textinput.View())
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := m.styles.Header.Render("hiredesk")
	ctx := m.styles.ContextLabel.Render(m.contextLabel())
	status := ""
	if m.processor.Busy() {
		status = " " + m.spinner.View() + m.styles.Muted.Render("thinking")
	}
	return title + ctx + status
}

func (m Model) footerView() string {
	if m.err != nil {
		return m.styles.Footer.Render("⚠️ " + m.err.Error())
	}
	if m.machine.IsOpen() {
		switch m.machine.Step() {
		case palette.StepSearchCandidate, palette.StepSearchCompany:
			return m.styles.Footer.Render("↑/↓ navigate • enter select • esc back")
		default:
			return m.styles.Footer.Render("↑/↓ navigate • enter run • esc close")
		}
	}
	return m.styles.Footer.Render("ctrl+k palette • /help commands • ctrl+c quit")
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshViewport re-renders the transcript into the viewport and scrolls to
// the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	msgs := m.transcript.Messages()
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, m.renderMessage(msg))
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderMessage(msg transcript.Message) string {
	label := m.styles.BotLabel.Render("Assistant")
	if msg.Sender == transcript.SenderUser {
		label = m.styles.UserLabel.Render("You")
	}
	stamp := m.styles.Muted.Render(msg.Time.Format("15:04"))

	if msg.IsLoading {
		return fmt.Sprintf("%s %s\n%s %s", label, stamp,
			m.spinner.View(), m.styles.Muted.Render(msg.Content))
	}
	return fmt.Sprintf("%s %s\n%s", label, stamp, m.safeRender(msg.Content))
}

// safeRender passes content through glamour, falling back to the raw text
// when rendering fails.
func (m Model) safeRender(content string) string {
	if m.renderer == nil {
		return content
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// =============================================================================
// PALETTE
// =============================================================================

const paletteMaxRows = 8

func (m Model) paletteView() string {
	var b strings.Builder

	switch m.machine.Step() {
	case palette.StepInitial:
		b.WriteString(m.styles.PaletteTitle.Render("Commands"))
		b.WriteString("\n")
		cmds := m.machine.Commands()
		if len(cmds) == 0 {
			b.WriteString(m.styles.Muted.Render("No commands available"))
		} else {
			idx := m.machine.Index(len(cmds))
			for i, c := range m.visibleCommands(cmds, idx) {
				label := c.Icon + " " + c.Label
				if i == m.visibleIndex(len(cmds), idx) {
					b.WriteString(m.styles.Selected.Render(label))
				} else {
					b.WriteString(m.styles.Item.Render(label))
				}
				if c.Description != "" {
					b.WriteString(m.styles.Muted.Render("  " + c.Description))
				}
				b.WriteString("\n")
			}
		}

	case palette.StepSearchCandidate:
		b.WriteString(m.styles.PaletteTitle.Render("Select a candidate"))
		b.WriteString("\n")
		b.WriteString(m.searchinput.View())
		b.WriteString("\n")
		list := palette.FilterCandidates(m.candidates, m.machine.Term())
		b.WriteString(m.candidateRows(list))

	case palette.StepSearchCompany:
		b.WriteString(m.styles.PaletteTitle.Render("Select a company"))
		b.WriteString("\n")
		b.WriteString(m.searchinput.View())
		b.WriteString("\n")
		list := palette.FilterCompanies(m.companies, m.machine.Term())
		b.WriteString(m.companyRows(list))
	}

	return m.styles.PaletteBox.Width(m.width - 4).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) candidateRows(list []entity.Candidate) string {
	if m.listsLoading {
		return m.styles.Muted.Render("Loading...")
	}
	if len(list) == 0 {
		return m.styles.Muted.Render("No matches")
	}
	idx := m.machine.Index(len(list))
	var b strings.Builder
	for i, c := range list {
		if i >= paletteMaxRows {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  ...and %d more", len(list)-paletteMaxRows)))
			break
		}
		line := fmt.Sprintf("%s  %s", c.DisplayName(), m.styles.Muted.Render(c.Position))
		if i == idx {
			line = m.styles.Selected.Render(c.DisplayName()) + "  " + m.styles.Muted.Render(c.Position)
		} else {
			line = m.styles.Item.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) companyRows(list []entity.Company) string {
	if m.listsLoading {
		return m.styles.Muted.Render("Loading...")
	}
	if len(list) == 0 {
		return m.styles.Muted.Render("No matches")
	}
	idx := m.machine.Index(len(list))
	var b strings.Builder
	for i, c := range list {
		if i >= paletteMaxRows {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  ...and %d more", len(list)-paletteMaxRows)))
			break
		}
		line := fmt.Sprintf("%s  %s", c.Name, m.styles.Muted.Render(c.Industry))
		if i == idx {
			line = m.styles.Selected.Render(c.Name) + "  " + m.styles.Muted.Render(c.Industry)
		} else {
			line = m.styles.Item.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// visibleCommands windows the command list around the selection so long lists
// fit the palette box.
func (m Model) visibleCommands(cmds []palette.Command, idx int) []palette.Command {
	if len(cmds) <= paletteMaxRows {
		return cmds
	}
	start := idx - paletteMaxRows/2
	if start < 0 {
		start = 0
	}
	if start+paletteMaxRows > len(cmds) {
		start = len(cmds) - paletteMaxRows
	}
	return cmds[start : start+paletteMaxRows]
}

// visibleIndex maps the absolute selection index into the visible window.
func (m Model) visibleIndex(total, idx int) int {
	if total <= paletteMaxRows {
		return idx
	}
	start := idx - paletteMaxRows/2
	if start < 0 {
		start = 0
	}
	if start+paletteMaxRows > total {
		start = total - paletteMaxRows
	}
	return idx - start
}
