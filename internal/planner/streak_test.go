package planner

import (
	"testing"
	"time"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
)

func dsaDone(l models.DailyLog) bool { return l.DSADone }

// history helper: dates newest first, flag applied to all rows.
func dsaHistory(flags map[string]bool, datesDesc ...string) []models.DailyLog {
	history := make([]models.DailyLog, 0, len(datesDesc))
	for _, d := range datesDesc {
		history = append(history, models.DailyLog{UserID: 1, Date: d, DSADone: flags[d]})
	}
	return history
}

func TestCalendarStreak_Boundary(t *testing.T) {
	flags := map[string]bool{
		"2024-03-01": true,
		"2024-03-02": true,
		"2024-03-03": true,
		"2024-03-04": false,
	}
	history := dsaHistory(flags, "2024-03-04", "2024-03-03", "2024-03-02", "2024-03-01")

	if got := CalendarStreak(dsaDone, "2024-03-03", history); got != 3 {
		t.Errorf("streak at 2024-03-03 = %d, want 3", got)
	}
	// Still live one day later: last flagged day is the day before.
	if got := CalendarStreak(dsaDone, "2024-03-04", history); got != 3 {
		t.Errorf("streak at 2024-03-04 = %d, want 3", got)
	}
	// Two-day gap kills the streak no matter what is behind it.
	if got := CalendarStreak(dsaDone, "2024-03-05", history); got != 0 {
		t.Errorf("streak at 2024-03-05 = %d, want 0", got)
	}
}

func TestCalendarStreak_GapBreaksRun(t *testing.T) {
	flags := map[string]bool{
		"2024-03-05": true,
		"2024-03-04": true,
		// 03 missing entirely
		"2024-03-02": true,
		"2024-03-01": true,
	}
	history := dsaHistory(flags, "2024-03-05", "2024-03-04", "2024-03-02", "2024-03-01")

	if got := CalendarStreak(dsaDone, "2024-03-05", history); got != 2 {
		t.Errorf("streak = %d, want 2 (run stops at the missing day)", got)
	}
}

func TestCalendarStreak_FalseFlagBreaksRun(t *testing.T) {
	flags := map[string]bool{
		"2024-03-04": true,
		"2024-03-03": false,
		"2024-03-02": true,
	}
	history := dsaHistory(flags, "2024-03-04", "2024-03-03", "2024-03-02")

	if got := CalendarStreak(dsaDone, "2024-03-04", history); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestCalendarStreak_Empty(t *testing.T) {
	if got := CalendarStreak(dsaDone, "2024-03-03", nil); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
	if got := CalendarStreak(dsaDone, "bad-date", dsaHistory(map[string]bool{"2024-03-03": true}, "2024-03-03")); got != 0 {
		t.Errorf("streak with bad reference date = %d, want 0", got)
	}
}

func habitLog(date string, createdAt time.Time) models.HabitLog {
	return models.HabitLog{UserID: 1, HabitID: 1, Date: date, Completed: true, CreatedAt: createdAt}
}

func TestDynamicStreak_NoEvents(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	status := DynamicStreak("2024-03-04", now, nil)
	if status.Streak != 0 || status.AtRisk || status.ExpiresAt != nil {
		t.Errorf("empty log status = %+v, want zero value", status)
	}
}

func TestDynamicStreak_GraceWindow(t *testing.T) {
	now := time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC)

	// 21 hours ago: at risk, streak intact.
	logs := []models.HabitLog{
		habitLog("2024-03-03", now.Add(-21*time.Hour)),
		habitLog("2024-03-02", now.Add(-45*time.Hour)),
	}
	status := DynamicStreak("2024-03-04", now, logs)
	if status.Streak != 2 {
		t.Errorf("streak = %d, want 2", status.Streak)
	}
	if !status.AtRisk {
		t.Error("21h since last event should be at risk")
	}
	if status.ExpiresAt == nil {
		t.Fatal("expiry missing")
	}
	wantExpiry := now.Add(-21 * time.Hour).Add(24 * time.Hour)
	if !status.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expiry = %v, want %v", status.ExpiresAt, wantExpiry)
	}

	// 19 hours ago: same streak, not yet at risk.
	logs[0] = habitLog("2024-03-03", now.Add(-19*time.Hour))
	status = DynamicStreak("2024-03-04", now, logs)
	if status.Streak != 2 || status.AtRisk {
		t.Errorf("19h status = %+v, want streak 2 not at risk", status)
	}

	// 49 hours ago: dead regardless of dates.
	logs = []models.HabitLog{habitLog("2024-03-02", now.Add(-49 * time.Hour))}
	status = DynamicStreak("2024-03-04", now, logs)
	if status.Streak != 0 || status.AtRisk || status.ExpiresAt != nil {
		t.Errorf("49h status = %+v, want dead streak", status)
	}
}

func TestDynamicStreak_Consecutiveness(t *testing.T) {
	now := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)

	// 01, 02, then a gap before 04: only the 4th counts.
	logs := []models.HabitLog{
		habitLog("2024-03-01", time.Date(2024, 3, 1, 21, 0, 0, 0, time.UTC)),
		habitLog("2024-03-02", time.Date(2024, 3, 2, 23, 30, 0, 0, time.UTC)),
		habitLog("2024-03-04", now.Add(-2*time.Hour)),
	}
	status := DynamicStreak("2024-03-04", now, logs)
	if status.Streak != 1 {
		t.Errorf("streak = %d, want 1", status.Streak)
	}

	// Fill the gap: full run of 4.
	logs = append(logs, habitLog("2024-03-03", time.Date(2024, 3, 3, 22, 0, 0, 0, time.UTC)))
	status = DynamicStreak("2024-03-04", now, logs)
	if status.Streak != 4 {
		t.Errorf("streak = %d, want 4", status.Streak)
	}
}

func TestDynamicStreak_LapsedAgainstReferenceDate(t *testing.T) {
	now := time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)

	// Last completion within 48h of now, but two calendar days before the
	// reference date: lapsed.
	logs := []models.HabitLog{habitLog("2024-03-04", now.Add(-40 * time.Hour))}
	status := DynamicStreak("2024-03-06", now, logs)
	if status.Streak != 0 {
		t.Errorf("streak = %d, want 0", status.Streak)
	}
}

func TestDynamicStreak_MultipleEventsSameDay(t *testing.T) {
	now := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

	logs := []models.HabitLog{
		habitLog("2024-03-04", now.Add(-10*time.Hour)),
		habitLog("2024-03-04", now.Add(-2*time.Hour)), // same day, later
		habitLog("2024-03-03", now.Add(-30*time.Hour)),
	}
	status := DynamicStreak("2024-03-04", now, logs)
	if status.Streak != 2 {
		t.Errorf("streak = %d, want 2 (distinct days)", status.Streak)
	}
	wantExpiry := now.Add(-2 * time.Hour).Add(24 * time.Hour)
	if status.ExpiresAt == nil || !status.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expiry = %v, want %v (latest event wins)", status.ExpiresAt, wantExpiry)
	}
}
