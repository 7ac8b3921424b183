// Package stats contains round metrics and end-screen reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/breaker/internal/model"
)

const sparkChars = " .:-=+*#%@"

// RoundMetrics computes hits per minute and accuracy for a round.
func RoundMetrics(hits, shots, durationSec int) (hitsPerMin, accuracy float64) {
	if durationSec > 0 {
		hitsPerMin = float64(hits) / (float64(durationSec) / 60.0)
	}
	if shots > 0 {
		accuracy = float64(hits) / float64(shots)
	}
	return hitsPerMin, accuracy
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// ScoreSparkline renders the score trend across rounds.
func ScoreSparkline(rounds []model.RoundResult) string {
	values := make([]float64, len(rounds))
	for i, r := range rounds {
		values[i] = float64(r.Score)
	}
	return Sparkline(values)
}

// RenderRounds prints a table of rounds, most recent last.
func RenderRounds(w io.Writer, rounds []model.RoundResult) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds yet.")
		return err
	}
	headers := []string{"#", "Score", "Hits", "Shots", "Accuracy", "Hits/min", "Scene"}
	rows := make([][]string, 0, len(rounds))
	for i, r := range rounds {
		perMin, acc := RoundMetrics(r.Hits, r.Shots, r.DurationSec)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Hits),
			fmt.Sprintf("%d", r.Shots),
			fmt.Sprintf("%.1f%%", acc*100),
			fmt.Sprintf("%.1f", perMin),
			r.Background,
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
