package domain

import (
	"regexp"
	"strconv"
)

// DurationRange is a filter interval over tour duration in days.
// A nil MaxDays means the range is open-ended ([MinDays, ∞)).
type DurationRange struct {
	// MinDays is the minimum acceptable duration in days (inclusive)
	MinDays int `json:"minDays"`

	// MaxDays is the maximum acceptable duration in days (inclusive)
	MaxDays *int `json:"maxDays,omitempty"`
}

// Contains checks if a duration (in days) falls within the range.
func (r *DurationRange) Contains(days int) bool {
	if r == nil {
		return true
	}
	if days < r.MinDays {
		return false
	}
	if r.MaxDays != nil && days > *r.MaxDays {
		return false
	}
	return true
}

// Duration bucket token shapes. Tokens originate from a fixed set of UI
// buckets (e.g. "1-3", "4-7", "8+"), so anything else falls back to
// no filter instead of erroring.
var (
	openRangePattern   = regexp.MustCompile(`^(\d+)\+$`)
	closedRangePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)
)

// ParseDurationRange parses a duration bucket token into a range filter.
//
//	"8+"  -> [8, ∞)
//	"1-3" -> [1, 3]
//
// Malformed tokens (including unparseable bounds) return nil: no filter,
// no error. This lenient fallback is designed behavior, not input loss.
func ParseDurationRange(token string) *DurationRange {
	if m := openRangePattern.FindStringSubmatch(token); m != nil {
		min, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return &DurationRange{MinDays: min}
	}

	if m := closedRangePattern.FindStringSubmatch(token); m != nil {
		min, errMin := strconv.Atoi(m[1])
		max, errMax := strconv.Atoi(m[2])
		if errMin != nil || errMax != nil {
			return nil
		}
		return &DurationRange{MinDays: min, MaxDays: &max}
	}

	return nil
}
