// Package tui provides the Bubble Tea game interface.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/breaker/internal/game"
	"github.com/verte-zerg/breaker/internal/session"
	"github.com/verte-zerg/breaker/internal/stats"
	"github.com/verte-zerg/breaker/internal/statsui"
)

type screen int

const (
	screenMenu screen = iota
	screenPlay
	screenEnd
	screenWords
	screenBackgrounds
	screenBoard
)

const (
	frameInterval = 50 * time.Millisecond
	moveStep      = 0.5
	turnStep      = 0.08
	mouseTurnStep = 0.03
	reportRounds  = 5
	alertSeconds  = 5

	fallbackWidth  = 80
	fallbackHeight = 24
)

var menuItems = []string{"Game Start", "Words", "Backgrounds", "Quit"}

var backgroundInfo = map[session.Background][2]string{
	session.White:  {"White Room", "An endless bright space. Helps you focus."},
	session.Space:  {"Space", "A quiet night sky full of stars. Find your calm."},
	session.School: {"School", "A warm wooden classroom floor."},
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

var panelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder(), true).
	BorderForeground(lipgloss.Color("#4A4A4A"))

var focusPanelStyle = panelStyle.BorderForeground(lipgloss.Color("#C89A3A"))

type secondMsg struct {
	round int
}

type frameMsg struct {
	round int
	at    time.Time
}

// Model implements the Bubble Tea game UI.
type Model struct {
	game *game.Game
	fov  float64

	width  int
	height int

	screen    screen
	round     int
	lastFrame time.Time

	menuIndex int
	bgIndex   int

	wordInput textinput.Model
	wordFocus int
	wordSel   [2]int

	report stats.Report
	board  *statsui.Board
	errMsg string

	mouseX    int
	mouseY    int
	mouseSeen bool
}

// NewModel constructs the game UI around g. fov is the vertical field of view in degrees.
func NewModel(g *game.Game, fov float64) *Model {
	input := textinput.New()
	input.Placeholder = "type a word and press enter"
	input.CharLimit = 40
	input.Width = 30
	return &Model{
		game:      g,
		fov:       fov,
		screen:    screenMenu,
		wordInput: input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.board != nil {
			m.board.SetSize(msg.Width, msg.Height)
		}
		return m, nil
	case secondMsg:
		if msg.round != m.round || m.screen != screenPlay {
			return m, nil
		}
		m.game.Tick()
		if m.game.Status() == session.Ended {
			m.finishRound()
			return m, nil
		}
		return m, secondTick(m.round)
	case frameMsg:
		if msg.round != m.round || m.screen != screenPlay {
			return m, nil
		}
		dt := msg.at.Sub(m.lastFrame)
		if dt < 0 {
			dt = 0
		}
		m.lastFrame = msg.at
		m.game.Advance(dt)
		return m, frameTick(m.round)
	case tea.MouseMsg:
		if m.screen == screenPlay {
			m.handleMouse(msg)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenPlay:
			return m.updatePlay(msg)
		case screenEnd:
			return m.updateEnd(msg)
		case screenWords:
			return m.updateWords(msg)
		case screenBackgrounds:
			return m.updateBackgrounds(msg)
		case screenBoard:
			return m.updateBoard(msg)
		}
	}
	return m, nil
}

func secondTick(round int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return secondMsg{round: round}
	})
}

func frameTick(round int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{round: round, at: t}
	})
}

func (m *Model) startRound() tea.Cmd {
	m.game.Restart()
	m.round++
	m.lastFrame = time.Now()
	m.screen = screenPlay
	m.errMsg = ""
	return tea.Batch(secondTick(m.round), frameTick(m.round))
}

func (m *Model) toMenu() {
	m.game.Reset()
	m.round++
	m.screen = screenMenu
	m.wordInput.Blur()
}

func (m *Model) finishRound() {
	m.screen = screenEnd
	m.round++
	board := m.game.Board()
	if board == nil {
		return
	}
	report, err := stats.BuildReport(context.Background(), board, reportRounds)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load rounds: %v", err)
		logErrf("failed to load rounds: %v\n", err)
		return
	}
	m.report = report
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.menuIndex = (m.menuIndex + len(menuItems) - 1) % len(menuItems)
	case "down", "j":
		m.menuIndex = (m.menuIndex + 1) % len(menuItems)
	case "w":
		return m.openWords()
	case "b":
		return m.openBackgrounds()
	case "enter", " ":
		switch m.menuIndex {
		case 0:
			return m, m.startRound()
		case 1:
			return m.openWords()
		case 2:
			return m.openBackgrounds()
		default:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.toMenu()
	case "w":
		m.game.Move(moveStep, 0)
	case "s":
		m.game.Move(-moveStep, 0)
	case "a":
		m.game.Move(0, -moveStep)
	case "d":
		m.game.Move(0, moveStep)
	case "left", "h":
		m.game.Turn(turnStep, 0)
	case "right", "l":
		m.game.Turn(-turnStep, 0)
	case "up", "k":
		m.game.Turn(0, turnStep)
	case "down", "j":
		m.game.Turn(0, -turnStep)
	case " ", "enter", "f":
		m.fire()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.fire()
		}
	case tea.MouseActionMotion:
		if m.mouseSeen {
			dx := msg.X - m.mouseX
			dy := msg.Y - m.mouseY
			m.game.Turn(-float64(dx)*mouseTurnStep, -float64(dy)*mouseTurnStep*cellAspect)
		}
	}
	m.mouseX = msg.X
	m.mouseY = msg.Y
	m.mouseSeen = true
}

func (m *Model) fire() (string, bool) {
	scene := m.game.Scene()
	scene.Offset = bobOffset(m.game.Clock().Seconds())
	return m.game.Fire(scene)
}

func (m *Model) updateEnd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "r":
		return m, m.startRound()
	case "esc", "m":
		m.toMenu()
	case "h":
		m.board = statsui.NewBoard(m.game.Board())
		width, height := m.size()
		m.board.SetSize(width, height)
		m.screen = screenBoard
	}
	return m, nil
}

func (m *Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "h":
		m.board = nil
		m.screen = screenEnd
		return m, nil
	}
	return m, m.board.Update(msg)
}

func (m *Model) openBackgrounds() (tea.Model, tea.Cmd) {
	m.screen = screenBackgrounds
	for i, bg := range session.Backgrounds {
		if bg == m.game.Background() {
			m.bgIndex = i
		}
	}
	return m, nil
}

func (m *Model) updateBackgrounds(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(session.Backgrounds)
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenMenu
	case "up", "k":
		m.bgIndex = (m.bgIndex + n - 1) % n
	case "down", "j":
		m.bgIndex = (m.bgIndex + 1) % n
	case "enter", " ":
		m.game.SetBackground(session.Backgrounds[m.bgIndex])
		m.screen = screenMenu
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.size()
	var content string
	switch m.screen {
	case screenPlay:
		return m.viewPlay(width, height)
	case screenEnd:
		content = m.viewEnd()
	case screenWords:
		content = m.viewWords()
	case screenBackgrounds:
		content = m.viewBackgrounds()
	case screenBoard:
		return m.board.View()
	default:
		content = m.viewMenu()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return width, height
}

func (m *Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("STRESS ") + accentStyle.Render("BREAKER"))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Are bad words wearing you down?\nBreak the blocks and collect some positive energy!"))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		if i == m.menuIndex {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("Scene: %s  ·  enter select  ·  q quit", m.game.Background())))
	return panelStyle.Render(b.String())
}

func (m *Model) viewPlay(width, height int) string {
	sceneHeight := height - 2
	if sceneHeight < 1 {
		sceneHeight = 1
	}
	palette := paletteFor(m.game.Background())
	c := newCanvas(width, sceneHeight)
	p := newProjector(m.game.Camera(), width, sceneHeight, m.fov)
	drawScene(c, p, m.game.Background(), m.game.Targets(), bobOffset(m.game.Clock().Seconds()))

	score, timer := hudSegments(m.game.Score(), m.game.TimeLeft())
	timerStyle := palette[styleHUD]
	if m.game.TimeLeft() <= alertSeconds {
		timerStyle = palette[styleHUDAlert]
	}
	gap := width - lipgloss.Width(score) - lipgloss.Width(timer)
	if gap < 1 {
		gap = 1
	}
	hud := palette[styleHUD].Render(score) + palette[styleSky].Render(strings.Repeat(" ", gap)) + timerStyle.Render(timer)
	hint := footerStyle.Render("WASD move  ·  arrows/hjkl look  ·  space/click fire  ·  esc menu")
	hintLine := lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center, hint)
	return hud + "\n" + c.render(palette) + "\n" + hintLine
}

// hudSegments formats the score and timer shown above the scene.
func hudSegments(score, timeLeft int) (string, string) {
	return fmt.Sprintf("SCORE %06d", score), fmt.Sprintf("TIME %ds", timeLeft)
}

func (m *Model) viewEnd() string {
	var b strings.Builder
	b.WriteString(scoreStyle.Render("Time's Up!"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Feeling a little lighter?"))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("FINAL SCORE"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d", m.game.Score())))
	b.WriteString("\n\n")
	if round, ok := m.game.LastRound(); ok {
		perMin, acc := stats.RoundMetrics(round.Hits, round.Shots, round.DurationSec)
		b.WriteString(fmt.Sprintf("Hits %d / %d shots  ·  %.1f%% accuracy  ·  %.1f hits/min\n", round.Hits, round.Shots, acc*100, perMin))
	}
	if m.report.RoundCount > 0 {
		b.WriteString(fmt.Sprintf("Best %d over %d rounds  ·  trend %s\n\n", m.report.BestScore, m.report.RoundCount, stats.ScoreSparkline(m.report.Rounds)))
		var table bytes.Buffer
		if err := stats.RenderRounds(&table, m.report.Rounds); err != nil {
			logErrf("failed to render rounds: %v\n", err)
		} else {
			b.WriteString(mutedStyle.Render(strings.TrimRight(table.String(), "\n")))
			b.WriteString("\n")
		}
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter/r try again  ·  h round board  ·  m menu  ·  q quit"))
	return panelStyle.Render(b.String())
}

func (m *Model) viewBackgrounds() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Backgrounds"))
	b.WriteString("\n\n")
	for i, bg := range session.Backgrounds {
		info := backgroundInfo[bg]
		name := info[0]
		if bg == m.game.Background() {
			name += " (current)"
		}
		if i == m.bgIndex {
			b.WriteString(selectedStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n    " + mutedStyle.Render(info[1]) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter select  ·  esc back"))
	return panelStyle.Render(b.String())
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
