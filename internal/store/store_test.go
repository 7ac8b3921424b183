package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/breaker/internal/model"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	st, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func round(i, score int) model.RoundResult {
	start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute).UTC()
	return model.RoundResult{
		StartedAt:   start,
		EndedAt:     start.Add(30 * time.Second),
		Score:       score,
		Hits:        score / 100,
		Shots:       score/100 + 2,
		Background:  "space",
		DurationSec: 30,
	}
}

func TestBestScoreEmpty(t *testing.T) {
	st := openMemory(t)
	best, rounds, err := st.BestScore(context.Background())
	if err != nil {
		t.Fatalf("best score: %v", err)
	}
	if best != 0 || rounds != 0 {
		t.Fatalf("expected 0/0, got %d/%d", best, rounds)
	}
}

func TestInsertAndList(t *testing.T) {
	st := openMemory(t)
	ctx := context.Background()
	for i, score := range []int{300, 1200, 700} {
		if _, err := st.InsertRound(ctx, round(i, score)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	best, rounds, err := st.BestScore(ctx)
	if err != nil {
		t.Fatalf("best score: %v", err)
	}
	if best != 1200 || rounds != 3 {
		t.Fatalf("expected 1200/3, got %d/%d", best, rounds)
	}

	all, err := st.ListRounds(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].Score != 300 || all[2].Score != 700 {
		t.Fatalf("unexpected rounds %+v", all)
	}
	if !all[1].StartedAt.Equal(round(1, 0).StartedAt) || all[1].Background != "space" {
		t.Fatalf("round fields not preserved: %+v", all[1])
	}

	recent, err := st.ListRounds(ctx, 2)
	if err != nil {
		t.Fatalf("list last: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 1200 || recent[1].Score != 700 {
		t.Fatalf("unexpected recent rounds %+v", recent)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rounds.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
