package leveling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{
			name: "zero xp",
			xp:   0,
			want: 1,
		},
		{
			name: "below first threshold",
			xp:   15,
			want: 1,
		},
		{
			name: "just below second level",
			xp:   99,
			want: 1,
		},
		{
			name: "second level boundary",
			xp:   100,
			want: 2,
		},
		{
			name: "between thresholds",
			xp:   55,
			want: 1,
		},
		{
			name: "third level",
			xp:   400,
			want: 3,
		},
		{
			name: "just below fourth level",
			xp:   899,
			want: 3,
		},
		{
			name: "fourth level boundary",
			xp:   900,
			want: 4,
		},
		{
			name: "negative xp falls back to first level",
			xp:   -10,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.xp))
		})
	}
}

func TestLevel_MonotonicOverRewards(t *testing.T) {
	// Уровень не убывает при любом начислении награды
	rewards := []int{RewardHabit, RewardTask, RewardFinance, RewardWorkout, RewardDiary, RewardWater}
	xp := 0
	level := Level(xp)
	for i := 0; i < 200; i++ {
		xp += rewards[i%len(rewards)]
		next := Level(xp)
		assert.GreaterOrEqual(t, next, level)
		level = next
	}
}

func TestNextStreak(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02 15:04", s)
		if err != nil {
			t.Fatalf("bad test date: %v", err)
		}
		return d
	}

	tests := []struct {
		name       string
		streak     int
		lastActive time.Time
		now        time.Time
		want       int
	}{
		{
			name:       "first ever action",
			streak:     0,
			lastActive: time.Time{},
			now:        day("2025-03-10 12:00"),
			want:       1,
		},
		{
			name:       "same day keeps streak",
			streak:     4,
			lastActive: day("2025-03-10 08:00"),
			now:        day("2025-03-10 23:30"),
			want:       4,
		},
		{
			name:       "next day extends streak",
			streak:     4,
			lastActive: day("2025-03-10 23:30"),
			now:        day("2025-03-11 00:10"),
			want:       5,
		},
		{
			name:       "two day gap resets streak",
			streak:     9,
			lastActive: day("2025-03-10 12:00"),
			now:        day("2025-03-12 12:00"),
			want:       1,
		},
		{
			name:       "same day repairs zero streak",
			streak:     0,
			lastActive: day("2025-03-10 08:00"),
			now:        day("2025-03-10 09:00"),
			want:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.streak, tt.lastActive, tt.now))
		})
	}
}
