// Package clock converts between HH:MM(:SS) wall-clock strings and integer
// minutes since midnight. The core works in integer minutes throughout;
// conversion happens exactly once, at the ingest and response boundaries —
// never inside the solver's hot path.
package clock

import "fmt"

// MinutesToHHMM formats minutes-since-midnight as zero-padded HH:MM.
func MinutesToHHMM(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// HHMMToMinutes parses an "HH:MM" wall-clock string, truncating (it carries
// no seconds to round away).
func HHMMToMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("clock: invalid HH:MM %q: %w", s, err)
	}
	return h*60 + m, nil
}

// HHMMSSToMinutes parses an "HH:MM:SS" wall-clock string and truncates the
// seconds component.
func HHMMSSToMinutes(s string) (int, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("clock: invalid HH:MM:SS %q: %w", s, err)
	}
	return h*60 + m, nil
}

// CeilHHMMSSToMinutes parses an "HH:MM:SS" string and rounds up to the next
// whole minute if seconds are present — used for court opening times,
// which must round up rather than truncate so a court never opens before
// its stated time.
func CeilHHMMSSToMinutes(s string) (int, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("clock: invalid HH:MM:SS %q: %w", s, err)
	}
	total := h*60 + m
	if sec > 0 {
		total++
	}
	return total, nil
}
