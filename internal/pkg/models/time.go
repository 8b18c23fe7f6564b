package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// WithinWindow reports whether t lies in [ref-window, ref+window]
func WithinWindow(t, ref time.Time, window time.Duration) bool {
	return !t.Before(ref.Add(-window)) && !t.After(ref.Add(window))
}
