package planner

import (
	"sort"
	"time"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
)

// Grace-window thresholds for the dynamic habit streak.
const (
	streakKillAfter   = 48 * time.Hour // hard cutoff since the last event
	streakExpiryAfter = 24 * time.Hour // deadline for the next completion
	streakWarnAfter   = 20 * time.Hour // early at-risk warning
)

// CalendarStreak counts the consecutive-day run of one daily flag ending at
// or adjacent to refDate. history must be sorted by date descending and is
// expected to be bounded to a recent window (the caller limits it to 100
// rows). The streak is live only when the most recent flagged day is refDate
// or the day before it; a day skipped two or more days ago kills it even if
// older entries are flagged.
func CalendarStreak(done func(models.DailyLog) bool, refDate string, history []models.DailyLog) int {
	ref, err := parseDay(refDate)
	if err != nil {
		return 0
	}

	start := -1
	for i := range history {
		if !done(history[i]) {
			continue
		}
		day, err := parseDay(history[i].Date)
		if err != nil {
			return 0
		}
		if gap := daysBetween(ref, day); gap == 0 || gap == 1 {
			start = i
		}
		break
	}
	if start == -1 {
		return 0
	}

	streak := 1
	last, _ := parseDay(history[start].Date)
	for i := start + 1; i < len(history); i++ {
		if !done(history[i]) {
			break
		}
		day, err := parseDay(history[i].Date)
		if err != nil || daysBetween(last, day) != 1 {
			break
		}
		streak++
		last = day
	}
	return streak
}

// StreakStatus is the grace-window streak state for one habit.
type StreakStatus struct {
	Streak    int        `json:"streak"`
	AtRisk    bool       `json:"at_risk"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// DynamicStreak computes a habit streak from timestamped completion events.
// Completions must land on consecutive calendar days, but the deadlines are
// hour-based so a habit logged late at night is not penalized against one
// logged at dawn: the streak dies outright once 48 hours pass since the last
// event (measured against now, not refDate), expires 24 hours after it, and
// is flagged at-risk after 20.
func DynamicStreak(refDate string, now time.Time, logs []models.HabitLog) StreakStatus {
	ref, err := parseDay(refDate)
	if err != nil {
		return StreakStatus{}
	}

	var latest time.Time
	daySet := make(map[string]bool)
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		if l.CreatedAt.After(latest) {
			latest = l.CreatedAt
		}
		daySet[l.Date] = true
	}
	if len(daySet) == 0 {
		return StreakStatus{}
	}
	if now.Sub(latest) > streakKillAfter {
		return StreakStatus{}
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		day, err := parseDay(d)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return StreakStatus{}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	// Already lapsed relative to the day being evaluated.
	if daysBetween(ref, days[0]) > 1 {
		return StreakStatus{}
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) != 1 {
			break
		}
		streak++
	}

	expires := latest.Add(streakExpiryAfter)
	return StreakStatus{
		Streak:    streak,
		AtRisk:    now.Sub(latest) > streakWarnAfter,
		ExpiresAt: &expires,
	}
}
