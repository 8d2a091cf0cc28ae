package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationRange(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantMin int
		wantMax *int
		wantNil bool
	}{
		{name: "open-ended range", token: "8+", wantMin: 8},
		{name: "closed range", token: "1-3", wantMin: 1, wantMax: intPtr(3)},
		{name: "mid bucket", token: "4-7", wantMin: 4, wantMax: intPtr(7)},
		{name: "single day range", token: "1-1", wantMin: 1, wantMax: intPtr(1)},
		{name: "non-numeric token", token: "abc", wantNil: true},
		{name: "missing second bound", token: "3-", wantNil: true},
		{name: "missing first bound", token: "-3", wantNil: true},
		{name: "bare plus", token: "+", wantNil: true},
		{name: "non-numeric prefix", token: "abc+", wantNil: true},
		{name: "empty token", token: "", wantNil: true},
		{name: "negative bound", token: "-3-5", wantNil: true},
		{name: "trailing garbage", token: "1-3x", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDurationRange(tt.token)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantMin, got.MinDays)
			if tt.wantMax == nil {
				assert.Nil(t, got.MaxDays)
			} else {
				require.NotNil(t, got.MaxDays)
				assert.Equal(t, *tt.wantMax, *got.MaxDays)
			}
		})
	}
}

func TestDurationRange_Contains(t *testing.T) {
	tests := []struct {
		name  string
		rng   *DurationRange
		days  int
		want  bool
	}{
		{name: "nil range contains everything", rng: nil, days: 100, want: true},
		{name: "open range includes lower bound", rng: &DurationRange{MinDays: 8}, days: 8, want: true},
		{name: "open range includes larger values", rng: &DurationRange{MinDays: 8}, days: 12, want: true},
		{name: "open range excludes below", rng: &DurationRange{MinDays: 8}, days: 7, want: false},
		{name: "closed range includes bounds", rng: &DurationRange{MinDays: 1, MaxDays: intPtr(3)}, days: 3, want: true},
		{name: "closed range excludes above", rng: &DurationRange{MinDays: 1, MaxDays: intPtr(3)}, days: 4, want: false},
		{name: "closed range excludes below", rng: &DurationRange{MinDays: 2, MaxDays: intPtr(3)}, days: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rng.Contains(tt.days))
		})
	}
}

func intPtr(i int) *int {
	return &i
}
