package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Timestamp renders the response timestamp format shared by all endpoints.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
