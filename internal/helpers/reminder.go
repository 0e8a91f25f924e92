package helpers

import (
	"math"
	"time"
)

const (
	// DefaultLeadTimeHours applies when a profile has never stored a lead time.
	DefaultLeadTimeHours = 24.0
	MinLeadTimeHours     = 0.0
	MaxLeadTimeHours     = 168.0
)

// EffectiveReminder returns the moment a reminder should fire: the chosen
// date moved back by the lead time, counted in whole seconds.
// When the offset cannot be applied the chosen date is returned unchanged.
func EffectiveReminder(chosen time.Time, leadTimeHours float64) time.Time {
	if math.IsNaN(leadTimeHours) || math.IsInf(leadTimeHours, 0) {
		return chosen
	}
	if leadTimeHours < MinLeadTimeHours || leadTimeHours > MaxLeadTimeHours {
		return chosen
	}

	seconds := int64(math.Floor(leadTimeHours * 3600))
	if seconds == 0 {
		return chosen
	}

	effective := chosen.Add(-time.Duration(seconds) * time.Second)
	// wrapped around the representable range
	if !effective.Before(chosen) {
		return chosen
	}
	return effective
}

// EffectiveReminderPtr is EffectiveReminder for an optional date.
func EffectiveReminderPtr(chosen *time.Time, leadTimeHours float64) *time.Time {
	if chosen == nil {
		return nil
	}
	effective := EffectiveReminder(*chosen, leadTimeHours)
	return &effective
}

// ClampLeadTime keeps a lead time inside the range the profile stepper offers.
func ClampLeadTime(hours float64) float64 {
	if math.IsNaN(hours) {
		return DefaultLeadTimeHours
	}
	if hours < MinLeadTimeHours {
		return MinLeadTimeHours
	}
	if hours > MaxLeadTimeHours {
		return MaxLeadTimeHours
	}
	return hours
}
