package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/breaker/internal/wordlist"
)

const (
	focusNegative = 0
	focusPositive = 1
)

func (m *Model) openWords() (tea.Model, tea.Cmd) {
	m.screen = screenWords
	m.wordInput.SetValue("")
	m.clampSelection()
	return m, m.wordInput.Focus()
}

func (m *Model) focusedList() *wordlist.List {
	words := m.game.Words()
	if m.wordFocus == focusPositive {
		return words.Positive
	}
	return words.Negative
}

func (m *Model) clampSelection() {
	words := m.game.Words()
	for i, l := range []*wordlist.List{words.Negative, words.Positive} {
		n := l.Len()
		switch {
		case n == 0:
			m.wordSel[i] = 0
		case m.wordSel[i] >= n:
			m.wordSel[i] = n - 1
		case m.wordSel[i] < 0:
			m.wordSel[i] = 0
		}
	}
}

func (m *Model) updateWords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.wordInput.Blur()
		m.screen = screenMenu
		return m, nil
	case tea.KeyTab:
		m.wordFocus = 1 - m.wordFocus
		return m, nil
	case tea.KeyEnter:
		if m.focusedList().Add(m.wordInput.Value()) {
			m.wordSel[m.wordFocus] = m.focusedList().Len() - 1
		}
		m.wordInput.SetValue("")
		return m, nil
	case tea.KeyUp:
		m.wordSel[m.wordFocus]--
		m.clampSelection()
		return m, nil
	case tea.KeyDown:
		m.wordSel[m.wordFocus]++
		m.clampSelection()
		return m, nil
	case tea.KeyDelete, tea.KeyCtrlD:
		m.focusedList().Remove(m.wordSel[m.wordFocus])
		m.clampSelection()
		return m, nil
	}
	var cmd tea.Cmd
	m.wordInput, cmd = m.wordInput.Update(msg)
	return m, cmd
}

func (m *Model) viewWords() string {
	words := m.game.Words()
	negative := m.wordColumn("Negative words", "targets show these", words.Negative, focusNegative)
	positive := m.wordColumn("Positive words", "revealed when a target breaks", words.Positive, focusPositive)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Words"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, negative, " ", positive))
	b.WriteString("\n\n")
	b.WriteString(m.wordInput.View())
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("enter add  ·  tab switch list  ·  ↑/↓ select  ·  del remove  ·  esc back"))
	return b.String()
}

func (m *Model) wordColumn(title, subtitle string, l *wordlist.List, focus int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(subtitle))
	b.WriteString("\n\n")
	items := l.Items()
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("(empty, using %d defaults)", len(l.Effective()))))
	}
	for i, word := range items {
		line := fmt.Sprintf("%2d. %s", i+1, word)
		if focus == m.wordFocus && i == m.wordSel[focus] {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	style := panelStyle
	if focus == m.wordFocus {
		style = focusPanelStyle
	}
	return style.Width(32).Render(b.String())
}
