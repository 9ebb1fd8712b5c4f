package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// hotStreakThreshold is the run length where a streak starts to matter
const hotStreakThreshold = 3

// ComputeStreaks scans results oldest to newest and returns the historical
// longest runs plus the current streak. The two views treat pushes
// differently on purpose: a push breaks a longest-run counter, while the
// current streak skips trailing pushes before it starts counting.
func ComputeStreaks(results []MatchResult) StreakSummary {
	summary := StreakSummary{Current: Streak{Type: StreakNone}}

	winRun, lossRun := 0, 0
	for i := range results {
		switch results[i].Outcome() {
		case ResultWin:
			winRun++
			lossRun = 0
		case ResultLoss:
			lossRun++
			winRun = 0
		default:
			winRun, lossRun = 0, 0
		}
		if winRun > summary.LongestWin {
			summary.LongestWin = winRun
		}
		if lossRun > summary.LongestLoss {
			summary.LongestLoss = lossRun
		}
	}

	summary.Current = CurrentStreak(results)

	return summary
}

// StreakFromNets computes the current streak from a chronologically-ordered
// (oldest to newest) slice of net results. Scanning newest to oldest,
// pushes before the first decided result are skipped; once the streak has a
// direction, any push or opposite result ends it.
func StreakFromNets(nets []decimal.Decimal) Streak {
	streak := Streak{Type: StreakNone}

	for i := len(nets) - 1; i >= 0; i-- {
		if nets[i].IsZero() {
			if streak.Type == StreakNone {
				continue
			}
			break
		}

		result := StreakWin
		if nets[i].IsNegative() {
			result = StreakLoss
		}

		if streak.Type == StreakNone {
			streak.Type = result
		} else if streak.Type != result {
			break
		}
		streak.Count++
	}

	return streak
}

// CurrentStreak computes the live streak from full match results, tracking
// the date of the oldest match in the run. Same push handling as
// StreakFromNets.
func CurrentStreak(results []MatchResult) Streak {
	streak := Streak{Type: StreakNone}

	for i := len(results) - 1; i >= 0; i-- {
		outcome := results[i].Outcome()
		if outcome == ResultPush {
			if streak.Type == StreakNone {
				continue
			}
			break
		}

		direction := StreakWin
		if outcome == ResultLoss {
			direction = StreakLoss
		}

		if streak.Type == StreakNone {
			streak.Type = direction
		} else if streak.Type != direction {
			break
		}
		streak.Count++
		start := results[i].Date
		streak.StartDate = &start
	}

	return streak
}

// IsHotStreak reports whether a streak is long enough to call out,
// winning or losing alike
func IsHotStreak(s Streak) bool {
	return s.Count >= hotStreakThreshold
}

// StreakLabel renders a streak for display
func StreakLabel(s Streak) string {
	switch s.Type {
	case StreakWin:
		return fmt.Sprintf("🔥 %dW", s.Count)
	case StreakLoss:
		return fmt.Sprintf("❄️ %dL", s.Count)
	}
	return "No streak"
}
