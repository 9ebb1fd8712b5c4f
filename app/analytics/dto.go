package analytics

// StreakResponse pairs the streak summary with its display label
type StreakResponse struct {
	StreakSummary
	Hot   bool   `json:"hot"`
	Label string `json:"label"`
}

func toStreakResponse(summary StreakSummary) *StreakResponse {
	return &StreakResponse{
		StreakSummary: summary,
		Hot:           IsHotStreak(summary.Current),
		Label:         StreakLabel(summary.Current),
	}
}
