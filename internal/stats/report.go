package stats

import (
	"context"

	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/store"
)

// Report contains precomputed data for the end screen.
type Report struct {
	Rounds     []model.RoundResult
	BestScore  int
	RoundCount int
}

// BuildReport loads the most recent rounds and the process-wide best.
func BuildReport(ctx context.Context, st *store.Store, last int) (Report, error) {
	rounds, err := st.ListRounds(ctx, last)
	if err != nil {
		return Report{}, err
	}
	best, count, err := st.BestScore(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Rounds:     rounds,
		BestScore:  best,
		RoundCount: count,
	}, nil
}
