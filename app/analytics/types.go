package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// Result classifies a match outcome from one user's point of view
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultPush Result = "push"
)

// StreakType discriminates the direction of a run of results
type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
	StreakNone StreakType = "none"
)

// Streak is a run of same-signed results ending at the most recent match.
// StartDate is the date of the oldest match inside the run, nil when the
// run is empty or dates are unknown.
type Streak struct {
	Type      StreakType `json:"type"`
	Count     int        `json:"count"`
	StartDate *time.Time `json:"start_date"`
}

// StreakSummary holds the historical maxima alongside the live streak.
// Longest runs are broken by pushes; the current streak looks past
// trailing pushes to reflect ongoing momentum.
type StreakSummary struct {
	Current     Streak `json:"current"`
	LongestWin  int    `json:"longest_win"`
	LongestLoss int    `json:"longest_loss"`
}

// MatchResult is the single-match primitive every aggregate is built from:
// one user's net cash outcome for one match plus the context needed to
// bucket it.
type MatchResult struct {
	MatchID     uuid.UUID        `json:"match_id"`
	Date        time.Time        `json:"date"`
	Net         decimal.Decimal  `json:"net"`
	Games       []models.BetType `json:"games"`
	OpponentIDs []uuid.UUID      `json:"opponent_ids"`
}

// Outcome classifies the net
func (r *MatchResult) Outcome() Result {
	switch {
	case r.Net.IsPositive():
		return ResultWin
	case r.Net.IsNegative():
		return ResultLoss
	}
	return ResultPush
}

// MatchStats is the per-match convenience view. TotalWon and TotalLost are
// the gross positive and negative sums before netting, so a push from
// offsetting entries still shows the money that moved.
type MatchStats struct {
	Result    Result          `json:"result"`
	Net       decimal.Decimal `json:"net"`
	TotalWon  decimal.Decimal `json:"total_won"`
	TotalLost decimal.Decimal `json:"total_lost"`
}

// GameRecord is a win/loss/push tally scoped to one bet type
type GameRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`
}

// HeadToHeadRecord is one user's lifetime record against a single opponent
type HeadToHeadRecord struct {
	OpponentID    uuid.UUID                      `json:"opponent_id"`
	DisplayName   string                         `json:"display_name"`
	AvatarURL     string                         `json:"avatar_url,omitempty"`
	TotalMatches  int                            `json:"total_matches"`
	Wins          int                            `json:"wins"`
	Losses        int                            `json:"losses"`
	Pushes        int                            `json:"pushes"`
	TotalWon      decimal.Decimal                `json:"total_won"`
	TotalLost     decimal.Decimal                `json:"total_lost"`
	NetAmount     decimal.Decimal                `json:"net_amount"`
	ResultsByGame map[models.BetType]*GameRecord `json:"results_by_game"`
	LastResult    Result                         `json:"last_result,omitempty"`
	LastPlayed    *time.Time                     `json:"last_played,omitempty"`
	CurrentStreak Streak                         `json:"current_streak"`
}

// HeadToHeadSummary ranks a user's rivals. Records are sorted by matches
// played, most-played first.
type HeadToHeadSummary struct {
	Records         []HeadToHeadRecord `json:"records"`
	TopRival        *HeadToHeadRecord  `json:"top_rival,omitempty"`
	BiggestDebtor   *HeadToHeadRecord  `json:"biggest_debtor,omitempty"`
	BiggestCreditor *HeadToHeadRecord  `json:"biggest_creditor,omitempty"`
}

// UserStats is a user's lifetime aggregate across completed matches
type UserStats struct {
	UserID       uuid.UUID              `json:"user_id"`
	TotalMatches int                    `json:"total_matches"`
	Wins         int                    `json:"wins"`
	Losses       int                    `json:"losses"`
	Pushes       int                    `json:"pushes"`
	WinRate      float64                `json:"win_rate"`
	TotalWon     decimal.Decimal        `json:"total_won"`
	TotalLost    decimal.Decimal        `json:"total_lost"`
	NetLifetime  decimal.Decimal        `json:"net_lifetime"`
	BiggestWin   decimal.Decimal        `json:"biggest_win"`
	BiggestLoss  decimal.Decimal        `json:"biggest_loss"`
	AvgPayout    decimal.Decimal        `json:"avg_payout"`
	MatchesByGame map[models.BetType]int `json:"matches_by_game"`
	FavoriteGame *models.BetType        `json:"favorite_game,omitempty"`
	ActiveDays   int                    `json:"active_days"`
	Streaks      StreakSummary          `json:"streaks"`
}

// WrappedMoment is a single standout match in a year-end summary
type WrappedMoment struct {
	Amount       decimal.Decimal `json:"amount"`
	OpponentName string          `json:"opponent_name,omitempty"`
	Date         time.Time       `json:"date"`
}

// GolfWrapped is the shareable year-end summary
type GolfWrapped struct {
	UserID         uuid.UUID          `json:"user_id"`
	Year           int                `json:"year"`
	TotalMatches   int                `json:"total_matches"`
	NetResult      decimal.Decimal    `json:"net_result"`
	WinRate        float64            `json:"win_rate"`
	MonthlyNets    [12]decimal.Decimal `json:"monthly_nets"`
	FavoriteDay    string             `json:"favorite_day,omitempty"`
	FavoriteCourse string             `json:"favorite_course,omitempty"`
	TopRivalName   string             `json:"top_rival_name,omitempty"`
	BiggestWin     *WrappedMoment     `json:"biggest_win,omitempty"`
	BiggestLoss    *WrappedMoment     `json:"biggest_loss,omitempty"`
	Emoji          string             `json:"emoji"`
	Headline       string             `json:"headline"`
	Subhead        string             `json:"subhead"`
}
