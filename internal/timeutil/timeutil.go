package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// PeriodSeconds is the length of a regulation NHL period.
const PeriodSeconds = 20 * 60

// UnknownClock is rendered when a clock string cannot be parsed.
const UnknownClock = "??:??"

// ParseClock parses a "MM:SS" game clock into seconds.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("timeutil: malformed clock %q", clock)
	}
	mm, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("timeutil: malformed clock %q", clock)
	}
	ss, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("timeutil: malformed clock %q", clock)
	}
	if mm < 0 || ss < 0 || ss > 59 {
		return 0, fmt.Errorf("timeutil: clock out of range %q", clock)
	}
	return mm*60 + ss, nil
}

// ElapsedFromRemaining converts a time-remaining clock into elapsed period
// time ("M:SS"). Unparseable input yields UnknownClock.
func ElapsedFromRemaining(remaining string) string {
	secs, err := ParseClock(remaining)
	if err != nil {
		return UnknownClock
	}
	elapsed := PeriodSeconds - secs
	if elapsed < 0 {
		elapsed = 0
	}
	return fmt.Sprintf("%d:%02d", elapsed/60, elapsed%60)
}

// ParseOffsetMinutes parses a UTC offset of the form "-05:00" into minutes.
// Anything malformed counts as zero offset.
func ParseOffsetMinutes(offset string) int {
	if len(offset) < 6 {
		return 0
	}
	sign := 1
	switch offset[0] {
	case '-':
		sign = -1
	case '+':
	default:
		return 0
	}
	hh, err1 := strconv.Atoi(offset[1:3])
	mm, err2 := strconv.Atoi(offset[4:6])
	if err1 != nil || err2 != nil || offset[3] != ':' || hh < 0 || mm < 0 {
		return 0
	}
	return sign * (hh*60 + mm)
}

// LocalizeStartTime formats the HH:MM portion of a UTC start timestamp
// ("2026-02-11T15:30:00Z") shifted by the given offset, in the compact
// "18H30" form the panel uses ("18H" on the hour). Unparseable input yields
// UnknownClock.
func LocalizeStartTime(startTimeUTC, offset string) string {
	idx := strings.IndexByte(startTimeUTC, 'T')
	if idx < 0 || len(startTimeUTC) < idx+6 {
		return UnknownClock
	}
	hh, err1 := strconv.Atoi(startTimeUTC[idx+1 : idx+3])
	mm, err2 := strconv.Atoi(startTimeUTC[idx+4 : idx+6])
	if err1 != nil || err2 != nil {
		return UnknownClock
	}
	total := hh*60 + mm + ParseOffsetMinutes(offset)
	for total < 0 {
		total += 24 * 60
	}
	total %= 24 * 60
	if total%60 == 0 {
		return fmt.Sprintf("%02dH", total/60)
	}
	return fmt.Sprintf("%02dH%02d", total/60, total%60)
}

// StartTimeLocal extracts the YYYY-MM-DD date portion of a UTC start
// timestamp together with the local start minute-of-day after applying the
// offset. The day shift is -1, 0 or +1 when the offset crosses midnight.
func StartTimeLocal(startTimeUTC, offset string) (date string, minuteOfDay, dayShift int, ok bool) {
	idx := strings.IndexByte(startTimeUTC, 'T')
	if idx < 10 || len(startTimeUTC) < idx+6 {
		return "", 0, 0, false
	}
	hh, err1 := strconv.Atoi(startTimeUTC[idx+1 : idx+3])
	mm, err2 := strconv.Atoi(startTimeUTC[idx+4 : idx+6])
	if err1 != nil || err2 != nil {
		return "", 0, 0, false
	}
	total := hh*60 + mm + ParseOffsetMinutes(offset)
	shift := 0
	for total < 0 {
		total += 24 * 60
		shift--
	}
	for total >= 24*60 {
		total -= 24 * 60
		shift++
	}
	return startTimeUTC[:10], total, shift, true
}
