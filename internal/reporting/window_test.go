package reporting

import (
	"testing"
	"time"
)

func TestBusinessDayWindow(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name     string
		now      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "afternoon belongs to today's window",
			now:      time.Date(2026, 3, 10, 15, 30, 0, 0, loc),
			wantFrom: time.Date(2026, 3, 10, 12, 0, 0, 0, loc),
			wantTo:   time.Date(2026, 3, 11, 12, 0, 0, 0, loc),
		},
		{
			name:     "exactly noon starts a new window",
			now:      time.Date(2026, 3, 10, 12, 0, 0, 0, loc),
			wantFrom: time.Date(2026, 3, 10, 12, 0, 0, 0, loc),
			wantTo:   time.Date(2026, 3, 11, 12, 0, 0, 0, loc),
		},
		{
			name:     "one minute before noon still belongs to yesterday",
			now:      time.Date(2026, 3, 10, 11, 59, 0, 0, loc),
			wantFrom: time.Date(2026, 3, 9, 12, 0, 0, 0, loc),
			wantTo:   time.Date(2026, 3, 10, 12, 0, 0, 0, loc),
		},
		{
			name:     "late-night sale belongs to the previous day",
			now:      time.Date(2026, 3, 10, 1, 15, 0, 0, loc),
			wantFrom: time.Date(2026, 3, 9, 12, 0, 0, 0, loc),
			wantTo:   time.Date(2026, 3, 10, 12, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := BusinessDayWindow(tt.now)
			if !from.Equal(tt.wantFrom) {
				t.Errorf("from = %v, want %v", from, tt.wantFrom)
			}
			if !to.Equal(tt.wantTo) {
				t.Errorf("to = %v, want %v", to, tt.wantTo)
			}
		})
	}
}

func TestMonthWindow(t *testing.T) {
	from, to := MonthWindow(time.February, 2026, time.UTC)
	if got := from.Format("2006-01-02"); got != "2026-02-01" {
		t.Errorf("from = %s, want 2026-02-01", got)
	}
	if got := to.Format("2006-01-02"); got != "2026-03-01" {
		t.Errorf("to = %s, want 2026-03-01", got)
	}
}

func TestYearWindow(t *testing.T) {
	from, to := YearWindow(2026, time.UTC)
	if got := from.Format("2006-01-02"); got != "2026-01-01" {
		t.Errorf("from = %s, want 2026-01-01", got)
	}
	if got := to.Format("2006-01-02"); got != "2027-01-01" {
		t.Errorf("to = %s, want 2027-01-01", got)
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Month
		wantErr bool
	}{
		{input: "March", want: time.March},
		{input: "march", want: time.March},
		{input: "DECEMBER", want: time.December},
		{input: " july ", want: time.July},
		{input: "Marchh", wantErr: true},
		{input: "", wantErr: true},
		{input: "3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMonth(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
