package model

import "time"

// User holds the gamification state for one user.
type User struct {
	ID                  string
	Username            string
	XP                  int
	Level               int
	StreakCount         int
	TotalTasksCompleted int
	LastActivity        *time.Time
}

// LevelForXP computes the level for a given XP total.
func LevelForXP(xp int) int {
	return xp/100 + 1
}
