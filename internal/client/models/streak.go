package models

import "time"

// StreakInfo is the posting-streak state reported by /me/streaks.
// TTL is the number of seconds until the current streak expires.
type StreakInfo struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	TTL           int `json:"ttl"`
}

func (s StreakInfo) TTLDuration() time.Duration {
	return time.Duration(s.TTL) * time.Second
}
