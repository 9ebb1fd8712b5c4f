package analytics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// GenerateGolfWrapped composes the year-end summary for one user from a
// single calendar year of completed matches. An empty year produces a
// zeroed summary with a prompt headline rather than an error.
func GenerateGolfWrapped(matches []models.Match, entriesByMatch map[uuid.UUID][]models.LedgerEntry, betsByMatch map[uuid.UUID][]models.Bet, users map[uuid.UUID]models.User, userID uuid.UUID, year int) GolfWrapped {
	yearMatches := make([]models.Match, 0, len(matches))
	for i := range matches {
		if matches[i].IsCompleted() && matches[i].TeeTime.Year() == year {
			yearMatches = append(yearMatches, matches[i])
		}
	}

	wrapped := GolfWrapped{
		UserID:    userID,
		Year:      year,
		NetResult: decimal.Zero,
		Emoji:     "➖",
	}
	for i := range wrapped.MonthlyNets {
		wrapped.MonthlyNets[i] = decimal.Zero
	}

	if len(yearMatches) == 0 {
		wrapped.Headline = fmt.Sprintf("No rounds in %d", year)
		wrapped.Subhead = "Get out there and tee one up."
		return wrapped
	}

	stats := ComputeUserStats(yearMatches, entriesByMatch, betsByMatch, userID)
	headToHead := ComputeHeadToHead(yearMatches, entriesByMatch, betsByMatch, users, userID)

	wrapped.TotalMatches = stats.TotalMatches
	wrapped.NetResult = stats.NetLifetime
	wrapped.WinRate = stats.WinRate
	wrapped.Emoji = resultEmoji(stats.NetLifetime)
	wrapped.FavoriteDay = favoriteDay(yearMatches)
	wrapped.FavoriteCourse = favoriteCourse(yearMatches)

	if headToHead.TopRival != nil {
		wrapped.TopRivalName = headToHead.TopRival.DisplayName
	}

	dayBuckets := completedByDate(yearMatches)
	for i := range dayBuckets {
		match := &dayBuckets[i]
		result := MatchResultOf(match, entriesByMatch[match.ID], betsByMatch[match.ID], userID)

		wrapped.MonthlyNets[match.TeeTime.Month()-1] = wrapped.MonthlyNets[match.TeeTime.Month()-1].Add(result.Net)

		if result.Net.IsPositive() &&
			(wrapped.BiggestWin == nil || result.Net.GreaterThan(wrapped.BiggestWin.Amount)) {
			wrapped.BiggestWin = momentFrom(match, entriesByMatch[match.ID], users, userID, result.Net)
		}
		if result.Net.IsNegative() &&
			(wrapped.BiggestLoss == nil || result.Net.Abs().GreaterThan(wrapped.BiggestLoss.Amount)) {
			wrapped.BiggestLoss = momentFrom(match, entriesByMatch[match.ID], users, userID, result.Net.Abs())
		}
	}

	wrapped.Headline, wrapped.Subhead = wrappedCopy(&wrapped)
	return wrapped
}

func resultEmoji(net decimal.Decimal) string {
	switch {
	case net.GreaterThan(decimal.NewFromInt(100)):
		return "🏆"
	case net.IsPositive():
		return "📈"
	case net.IsNegative():
		return "📉"
	}
	return "➖"
}

// favoriteDay buckets tee times into Sunday, Saturday, Friday, or a single
// Weekday bucket and returns the majority vote
func favoriteDay(matches []models.Match) string {
	counts := make(map[string]int)
	for i := range matches {
		counts[dayBucket(matches[i].TeeTime.Weekday())]++
	}

	favorite, best := "", 0
	for day, count := range counts {
		if count > best {
			favorite, best = day, count
		}
	}
	return favorite
}

func dayBucket(day time.Weekday) string {
	switch day {
	case time.Sunday:
		return "Sunday"
	case time.Saturday:
		return "Saturday"
	case time.Friday:
		return "Friday"
	}
	return "Weekday"
}

// favoriteCourse returns the most-played course name
func favoriteCourse(matches []models.Match) string {
	counts := make(map[string]int)
	favorite, best := "", 0
	for i := range matches {
		name := matches[i].CourseName
		counts[name]++
		if counts[name] > best {
			favorite, best = name, counts[name]
		}
	}
	return favorite
}

// momentFrom attributes a standout match to the opponent who moved the most
// money against the user in it
func momentFrom(match *models.Match, entries []models.LedgerEntry, users map[uuid.UUID]models.User, userID uuid.UUID, amount decimal.Decimal) *WrappedMoment {
	moment := &WrappedMoment{
		Amount: amount,
		Date:   match.TeeTime,
	}

	biggest := decimal.Zero
	for _, opponentID := range match.OpponentsOf(userID) {
		swing := decimal.Zero
		for i := range entries {
			if entries[i].IsBetween(userID, opponentID) {
				swing = swing.Add(entries[i].NetFor(userID))
			}
		}
		if swing.Abs().GreaterThan(biggest) {
			biggest = swing.Abs()
			moment.OpponentName = users[opponentID].DisplayName
		}
	}

	return moment
}

func wrappedCopy(w *GolfWrapped) (headline, subhead string) {
	rounds := "rounds"
	if w.TotalMatches == 1 {
		rounds = "round"
	}

	switch {
	case w.NetResult.IsPositive():
		headline = fmt.Sprintf("%s You took $%s off your group in %d", w.Emoji, w.NetResult.StringFixed(2), w.Year)
	case w.NetResult.IsNegative():
		headline = fmt.Sprintf("%s You paid out $%s in %d", w.Emoji, w.NetResult.Abs().StringFixed(2), w.Year)
	default:
		headline = fmt.Sprintf("%s You broke even in %d", w.Emoji, w.Year)
	}

	if w.TopRivalName != "" {
		subhead = fmt.Sprintf("%d %s played, and nobody saw you more than %s.", w.TotalMatches, rounds, w.TopRivalName)
	} else {
		subhead = fmt.Sprintf("%d %s played.", w.TotalMatches, rounds)
	}
	return headline, subhead
}
