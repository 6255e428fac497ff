package chatbot

import (
	"testing"
	"time"
)

// Wednesday, so weekday arithmetic exercises both directions.
var wednesday = time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)

func TestParseNaturalDate_RelativeForms(t *testing.T) {
	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"today", wednesday},
		{"Tomorrow", wednesday.AddDate(0, 0, 1)},
		{"next week", wednesday.AddDate(0, 0, 7)},
		{"in 3 days", wednesday.AddDate(0, 0, 3)},
		{"in 1 day", wednesday.AddDate(0, 0, 1)},
		{"in 0 days", wednesday},
		{"  tomorrow  ", wednesday.AddDate(0, 0, 1)},
	}
	for _, tt := range tests {
		got, err := ParseNaturalDate(tt.phrase, wednesday)
		if err != nil {
			t.Errorf("ParseNaturalDate(%q) error: %v", tt.phrase, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseNaturalDate(%q) = %v, want %v", tt.phrase, got, tt.want)
		}
	}
}

// "next <weekday>" adds the within-week offset plus a full extra week,
// landing 7-13 days out even when the weekday is still ahead this week.
func TestParseNaturalDate_NextWeekdayQuirk(t *testing.T) {
	tests := []struct {
		phrase   string
		wantDays int
	}{
		{"next friday", 9},    // Fri is 2 days ahead, +7
		{"next monday", 12},   // Mon is 5 days ahead (wrapped), +7
		{"next wednesday", 7}, // same weekday wraps to exactly one week
		{"next sunday", 11},
		{"Next Saturday", 10},
	}
	for _, tt := range tests {
		got, err := ParseNaturalDate(tt.phrase, wednesday)
		if err != nil {
			t.Errorf("ParseNaturalDate(%q) error: %v", tt.phrase, err)
			continue
		}
		if want := wednesday.AddDate(0, 0, tt.wantDays); !got.Equal(want) {
			t.Errorf("ParseNaturalDate(%q) = %v, want %v (%d days out)", tt.phrase, got, want, tt.wantDays)
		}
		if days := int(got.Sub(wednesday).Hours() / 24); days < 7 || days > 13 {
			t.Errorf("ParseNaturalDate(%q) landed %d days out, want within [7,13]", tt.phrase, days)
		}
	}
}

func TestParseNaturalDate_ExplicitFormats(t *testing.T) {
	got, err := ParseNaturalDate("2024-03-20", wednesday)
	if err != nil {
		t.Fatalf("ISO parse error: %v", err)
	}
	if want := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ISO = %v, want %v", got, want)
	}

	got, err = ParseNaturalDate("3/20/2024", wednesday)
	if err != nil {
		t.Fatalf("slash-date parse error: %v", err)
	}
	if want := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("slash-date = %v, want %v", got, want)
	}

	got, err = ParseNaturalDate("03/05/2024", wednesday)
	if err != nil {
		t.Fatalf("padded slash-date parse error: %v", err)
	}
	if want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("padded slash-date = %v, want %v", got, want)
	}
}

func TestParseNaturalDate_Failure(t *testing.T) {
	for _, phrase := range []string{"not a date", "", "in many days", "next someday", "20/45/2024", "soon"} {
		if _, err := ParseNaturalDate(phrase, wednesday); err == nil {
			t.Errorf("ParseNaturalDate(%q) = nil error, want failure", phrase)
		}
	}
}
