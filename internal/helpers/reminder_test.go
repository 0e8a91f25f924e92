package helpers

import (
	"math"
	"testing"
	"time"
)

func TestEffectiveReminderSubtractsLeadTime(t *testing.T) {
	chosen := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		hours float64
		want  time.Time
	}{
		{"zero lead time", 0, chosen},
		{"one day", 24, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"one week", 168, time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)},
		{"fractional hours", 1.5, time.Date(2025, 1, 2, 8, 30, 0, 0, time.UTC)},
		// 0.0001h = 0.36s, floored to zero
		{"sub second offset", 0.0001, chosen},
		// 0.001h = 3.6s, floored to 3s
		{"floored seconds", 0.001, chosen.Add(-3 * time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveReminder(chosen, tt.hours)
			if !got.Equal(tt.want) {
				t.Errorf("EffectiveReminder(%v, %v) = %v, want %v", chosen, tt.hours, got, tt.want)
			}
		})
	}
}

func TestEffectiveReminderExactOffsetAcrossRange(t *testing.T) {
	chosen := time.Date(2025, 3, 30, 1, 30, 0, 0, time.UTC)
	for h := 0.0; h <= 168; h += 0.25 {
		got := EffectiveReminder(chosen, h)
		want := time.Duration(math.Floor(h*3600)) * time.Second
		if diff := chosen.Sub(got); diff != want {
			t.Fatalf("lead %v: offset = %v, want %v", h, diff, want)
		}
	}
}

func TestEffectiveReminderFallsBackToChosen(t *testing.T) {
	chosen := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	for _, hours := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1, 169} {
		if got := EffectiveReminder(chosen, hours); !got.Equal(chosen) {
			t.Errorf("EffectiveReminder(%v) = %v, want unchanged %v", hours, got, chosen)
		}
	}
}

func TestEffectiveReminderIsDeterministic(t *testing.T) {
	chosen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	first := EffectiveReminder(chosen, 12)
	for i := 0; i < 10; i++ {
		if got := EffectiveReminder(chosen, 12); !got.Equal(first) {
			t.Fatalf("call %d returned %v, first returned %v", i, got, first)
		}
	}
}

func TestEffectiveReminderPtr(t *testing.T) {
	if got := EffectiveReminderPtr(nil, 24); got != nil {
		t.Errorf("expected nil for nil chosen date, got %v", got)
	}

	chosen := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	got := EffectiveReminderPtr(&chosen, 24)
	if got == nil || !got.Equal(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected effective reminder %v", got)
	}
	if !chosen.Equal(time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)) {
		t.Error("chosen date was mutated")
	}
}

func TestClampLeadTime(t *testing.T) {
	cases := map[float64]float64{
		-5:  0,
		0:   0,
		24:  24,
		168: 168,
		500: 168,
	}
	for in, want := range cases {
		if got := ClampLeadTime(in); got != want {
			t.Errorf("ClampLeadTime(%v) = %v, want %v", in, got, want)
		}
	}
	if got := ClampLeadTime(math.NaN()); got != DefaultLeadTimeHours {
		t.Errorf("ClampLeadTime(NaN) = %v, want default", got)
	}
}
