package statsui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/store"
)

func TestBuildRoundTableDataNewestFirst(t *testing.T) {
	end := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	rounds := []model.RoundResult{
		{Score: 300, Hits: 3, Shots: 4, DurationSec: 30, Background: "white", EndedAt: end},
		{Score: 900, Hits: 9, Shots: 9, DurationSec: 30, Background: "space", EndedAt: end.Add(time.Minute)},
	}
	cols, rows := buildRoundTableData(rounds)
	if len(cols) != 8 || len(rows) != 2 {
		t.Fatalf("unexpected shape %d cols %d rows", len(cols), len(rows))
	}
	if rows[0][0] != "2" || rows[0][1] != "900" || rows[0][6] != "space" {
		t.Fatalf("expected newest round first, got %v", rows[0])
	}
	if rows[1][4] != "75.0%" {
		t.Fatalf("unexpected accuracy %q", rows[1][4])
	}
	if rows[1][7] != "15:04:05" {
		t.Fatalf("unexpected end time %q", rows[1][7])
	}
}

func TestNewBoardWithoutStore(t *testing.T) {
	b := NewBoard(nil)
	b.SetSize(80, 20)
	if b.Rows() != 0 {
		t.Fatalf("expected empty board")
	}
	if !strings.Contains(b.View(), "No rounds yet.") {
		t.Fatalf("expected empty message")
	}
}

func TestNewBoardLoadsRounds(t *testing.T) {
	st, err := store.Open(store.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			t.Fatalf("close: %v", cerr)
		}
	}()
	ctx := context.Background()
	for _, score := range []int{100, 500, 200} {
		if _, err := st.InsertRound(ctx, model.RoundResult{Score: score, Hits: score / 100, Shots: 5, DurationSec: 30, Background: "school"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	b := NewBoard(st)
	b.SetSize(100, 30)
	if b.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", b.Rows())
	}
	view := b.View()
	for _, want := range []string{"Round board", "Best", "500", "Rounds"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
	b.Update(tea.KeyMsg{Type: tea.KeyDown})
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
}
