// Package statsui renders the round board browser shown between rounds.
package statsui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/stats"
	"github.com/verte-zerg/breaker/internal/store"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

var cardStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder(), true).
	BorderForeground(lipgloss.Color("#4A4A4A"))

// Board is a scrollable table of finished rounds with summary cards.
type Board struct {
	report stats.Report
	errMsg string
	table  table.Model

	width  int
	height int
}

// NewBoard loads every round from st. A nil store yields an empty board.
func NewBoard(st *store.Store) *Board {
	b := &Board{}
	if st != nil {
		report, err := stats.BuildReport(context.Background(), st, 0)
		if err != nil {
			b.errMsg = fmt.Sprintf("Failed to load rounds: %v", err)
		} else {
			b.report = report
		}
	}
	b.table = buildRoundTable(b.report.Rounds, 0, 1)
	return b
}

// Rows returns the number of table rows.
func (b *Board) Rows() int {
	return len(b.table.Rows())
}

// SetSize fits the board into a width x height area.
func (b *Board) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.table.SetWidth(width)
	b.table.SetHeight(max(1, height-b.chromeHeight()))
}

// Update scrolls the table.
func (b *Board) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "g", "home":
		b.table.GotoTop()
		return nil
	case "G", "end":
		b.table.GotoBottom()
		return nil
	}
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return cmd
}

// View renders cards, trend line, table and help.
func (b *Board) View() string {
	var out strings.Builder
	out.WriteString(b.header())
	out.WriteString("\n")
	if len(b.report.Rounds) == 0 {
		out.WriteString("No rounds yet.")
	} else {
		out.WriteString(b.table.View())
	}
	out.WriteString("\n")
	out.WriteString(headerStyle.Render("↑/↓ scroll  ·  g/G top/bottom  ·  esc back"))
	return out.String()
}

func (b *Board) header() string {
	var out strings.Builder
	out.WriteString(titleStyle.Render("Round board"))
	out.WriteString("\n")
	if b.errMsg != "" {
		out.WriteString(errorStyle.Render(b.errMsg))
		out.WriteString("\n")
	}
	out.WriteString(renderSummaryCards(b.report, b.width))
	if len(b.report.Rounds) > 1 {
		out.WriteString("\n")
		out.WriteString(headerStyle.Render("Trend " + stats.ScoreSparkline(b.report.Rounds)))
	}
	return out.String()
}

func (b *Board) chromeHeight() int {
	return lipgloss.Height(b.header()) + 2
}

func renderSummaryCards(report stats.Report, width int) string {
	if report.RoundCount == 0 {
		return headerStyle.Render("Finish a round to fill the board.")
	}
	var totalScore, totalAcc, totalPerMin float64
	for _, r := range report.Rounds {
		perMin, acc := stats.RoundMetrics(r.Hits, r.Shots, r.DurationSec)
		totalScore += float64(r.Score)
		totalAcc += acc
		totalPerMin += perMin
	}
	count := float64(len(report.Rounds))
	cards := []string{
		metricCard("Rounds", fmt.Sprintf("%d", report.RoundCount)),
		metricCard("Best", fmt.Sprintf("%d", report.BestScore)),
		metricCard("Avg score", fmt.Sprintf("%.0f", totalScore/count)),
		metricCard("Avg acc", fmt.Sprintf("%.1f%%", (totalAcc/count)*100)),
		metricCard("Hits/min", fmt.Sprintf("%.1f", totalPerMin/count)),
	}
	if width > 0 && width < 80 {
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4]),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func buildRoundTable(rounds []model.RoundResult, width, height int) table.Model {
	columns, rows := buildRoundTableData(rounds)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(1, height-1)),
		table.WithFocused(true),
	)
	t.SetWidth(width)
	t.SetStyles(roundTableStyles())
	return t
}

// buildRoundTableData lists rounds newest first.
func buildRoundTableData(rounds []model.RoundResult) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 7},
		{Title: "Hits", Width: 5},
		{Title: "Shots", Width: 6},
		{Title: "Accuracy", Width: 9},
		{Title: "Hits/min", Width: 9},
		{Title: "Scene", Width: 7},
		{Title: "Ended", Width: 8},
	}
	rows := make([]table.Row, 0, len(rounds))
	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		perMin, acc := stats.RoundMetrics(r.Hits, r.Shots, r.DurationSec)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Hits),
			fmt.Sprintf("%d", r.Shots),
			fmt.Sprintf("%.1f%%", acc*100),
			fmt.Sprintf("%.1f", perMin),
			r.Background,
			r.EndedAt.Format("15:04:05"),
		})
	}
	return columns, rows
}

func roundTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
