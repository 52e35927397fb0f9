package datetime

import (
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		wantErr bool
	}{
		{
			name:    "Valid date",
			dateStr: "2025-09-01",
			wantErr: false,
		},
		{
			name:    "Leap day",
			dateStr: "2024-02-29",
			wantErr: false,
		},
		{
			name:    "Month out of range does not roll over",
			dateStr: "2025-13-01",
			wantErr: true,
		},
		{
			name:    "Day out of range does not roll over",
			dateStr: "2025-02-30",
			wantErr: true,
		},
		{
			name:    "Non-leap February 29th",
			dateStr: "2025-02-29",
			wantErr: true,
		},
		{
			name:    "Empty string",
			dateStr: "",
			wantErr: true,
		},
		{
			name:    "Unpadded components",
			dateStr: "2025-9-1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.dateStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.dateStr, err, tt.wantErr)
				return
			}
			if !tt.wantErr && FormatISO(result) != tt.dateStr {
				t.Errorf("ParseDate(%q) did not round-trip, got %s", tt.dateStr, FormatISO(result))
			}
		})
	}
}

func TestMustParseDatePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseDate to panic with invalid date")
		}
	}()

	MustParseDate("invalid-date")
}

func TestDiffDaysInclusive(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
		wantOK   bool
	}{
		{
			name:     "Same day",
			start:    "2025-09-01",
			end:      "2025-09-01",
			expected: 1,
			wantOK:   true,
		},
		{
			name:     "Three days",
			start:    "2025-09-01",
			end:      "2025-09-03",
			expected: 3,
			wantOK:   true,
		},
		{
			name:     "Reversed range is negative",
			start:    "2025-09-03",
			end:      "2025-09-01",
			expected: -1,
			wantOK:   true,
		},
		{
			name:   "Invalid start",
			start:  "not-a-date",
			end:    "2025-09-01",
			wantOK: false,
		},
		{
			name:   "Invalid end",
			start:  "2025-09-01",
			end:    "2025-13-01",
			wantOK: false,
		},
		{
			name:     "Across month boundary",
			start:    "2025-01-30",
			end:      "2025-02-02",
			expected: 4,
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DiffDaysInclusive(tt.start, tt.end)
			if ok != tt.wantOK {
				t.Errorf("DiffDaysInclusive(%q, %q) ok = %v, expected %v", tt.start, tt.end, ok, tt.wantOK)
				return
			}
			if ok && days != tt.expected {
				t.Errorf("DiffDaysInclusive(%q, %q) = %d, expected %d", tt.start, tt.end, days, tt.expected)
			}
		})
	}
}

func TestDaysBetweenInclusive(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{
			name:     "Same day",
			start:    "2025-09-01",
			end:      "2025-09-01",
			expected: 1,
		},
		{
			name:     "Three days",
			start:    "2025-09-01",
			end:      "2025-09-03",
			expected: 3,
		},
		{
			name:     "Reversed order clamps to zero",
			start:    "2025-09-03",
			end:      "2025-09-01",
			expected: 0,
		},
		{
			name:     "Invalid date clamps to zero",
			start:    "",
			end:      "2025-09-01",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DaysBetweenInclusive(tt.start, tt.end)
			if result != tt.expected {
				t.Errorf("DaysBetweenInclusive(%q, %q) = %d, expected %d", tt.start, tt.end, result, tt.expected)
			}
		})
	}
}

func TestSequenceDates(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		count    int
		expected []string
	}{
		{
			name:     "Three days",
			start:    "2025-09-01",
			count:    3,
			expected: []string{"2025-09-01", "2025-09-02", "2025-09-03"},
		},
		{
			name:     "Crosses month boundary",
			start:    "2025-01-31",
			count:    2,
			expected: []string{"2025-01-31", "2025-02-01"},
		},
		{
			name:     "Crosses DST transition",
			start:    "2025-03-29",
			count:    3,
			expected: []string{"2025-03-29", "2025-03-30", "2025-03-31"},
		},
		{
			name:     "Zero count",
			start:    "2025-09-01",
			count:    0,
			expected: nil,
		},
		{
			name:     "Invalid start",
			start:    "nope",
			count:    3,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SequenceDates(tt.start, tt.count)
			if len(result) != len(tt.expected) {
				t.Fatalf("SequenceDates(%q, %d) returned %d dates, expected %d",
					tt.start, tt.count, len(result), len(tt.expected))
			}
			for i, want := range tt.expected {
				if got := FormatISO(result[i]); got != want {
					t.Errorf("SequenceDates(%q, %d)[%d] = %s, expected %s", tt.start, tt.count, i, got, want)
				}
			}
		})
	}
}

func TestDateBeforeDate(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected bool
		wantErr  bool
	}{
		{
			name:     "Before",
			first:    "2025-09-01",
			second:   "2025-09-02",
			expected: true,
		},
		{
			name:     "Equal is not before",
			first:    "2025-09-01",
			second:   "2025-09-01",
			expected: false,
		},
		{
			name:    "Invalid first date",
			first:   "bad",
			second:  "2025-09-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DateBeforeDate(tt.first, tt.second)
			if (err != nil) != tt.wantErr {
				t.Errorf("DateBeforeDate(%q, %q) error = %v, wantErr %v", tt.first, tt.second, err, tt.wantErr)
				return
			}
			if !tt.wantErr && result != tt.expected {
				t.Errorf("DateBeforeDate(%q, %q) = %v, expected %v", tt.first, tt.second, result, tt.expected)
			}
		})
	}
}
