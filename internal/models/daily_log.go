package models

import "time"

// DailyLog is the per-day summary, one row per (user, date).
// Writes merge field-by-field: a save that omits a field leaves the stored
// value untouched (coalesce, not overwrite).
type DailyLog struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;uniqueIndex:uidx_daily_user_date"`
	Date           string `gorm:"size:10;not null;uniqueIndex:uidx_daily_user_date"` // YYYY-MM-DD
	TLEMinutes     int    `gorm:"not null;default:0"` // time-logged-everywhere, minutes
	Note           string `gorm:"type:text"`
	TomorrowIntent string `gorm:"type:text"`
	DSADone        bool   `gorm:"not null;default:false"`
	DevDone        bool   `gorm:"not null;default:false"`
	GymDone        bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DailyLogPatch carries the fields a save explicitly supplied. Nil fields
// must leave the stored value untouched.
type DailyLogPatch struct {
	TLEMinutes     *int    `json:"tle_minutes"`
	Note           *string `json:"note"`
	TomorrowIntent *string `json:"tomorrow_intent"`
	DSADone        *bool   `json:"dsa_done"`
	DevDone        *bool   `json:"dev_done"`
	GymDone        *bool   `json:"gym_done"`
}

// Apply merges the supplied fields into the log, coalesce-style.
func (d *DailyLog) Apply(p DailyLogPatch) {
	if p.TLEMinutes != nil {
		d.TLEMinutes = *p.TLEMinutes
	}
	if p.Note != nil {
		d.Note = *p.Note
	}
	if p.TomorrowIntent != nil {
		d.TomorrowIntent = *p.TomorrowIntent
	}
	if p.DSADone != nil {
		d.DSADone = *p.DSADone
	}
	if p.DevDone != nil {
		d.DevDone = *p.DevDone
	}
	if p.GymDone != nil {
		d.GymDone = *p.GymDone
	}
}
