package models

import "testing"

func TestDailyLogApply_MergesOnlySuppliedFields(t *testing.T) {
	log := DailyLog{
		UserID:     1,
		Date:       "2024-03-01",
		Note:       "A",
		TLEMinutes: 10,
	}

	minutes := 30
	log.Apply(DailyLogPatch{TLEMinutes: &minutes})

	if log.TLEMinutes != 30 {
		t.Errorf("tle_minutes = %d, want 30", log.TLEMinutes)
	}
	if log.Note != "A" {
		t.Errorf("note = %q, want untouched \"A\"", log.Note)
	}
}

func TestDailyLogApply_ExplicitEmptyOverwrites(t *testing.T) {
	log := DailyLog{Note: "old"}

	empty := ""
	log.Apply(DailyLogPatch{Note: &empty})

	if log.Note != "" {
		t.Errorf("note = %q, want cleared", log.Note)
	}
}

func TestDailyLogApply_Flags(t *testing.T) {
	log := DailyLog{DSADone: true}

	done := true
	log.Apply(DailyLogPatch{GymDone: &done})

	if !log.DSADone || !log.GymDone || log.DevDone {
		t.Errorf("flags = dsa:%v dev:%v gym:%v, want dsa:true dev:false gym:true",
			log.DSADone, log.DevDone, log.GymDone)
	}
}
