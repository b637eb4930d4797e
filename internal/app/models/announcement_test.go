package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnnouncementExpiry(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		deadline *time.Time
		expired  bool
	}{
		{"no deadline never expires", nil, false},
		{"past deadline", &past, true},
		{"future deadline", &future, false},
		{"deadline exactly now", &now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Announcement{Deadline: tt.deadline}
			assert.Equal(t, tt.expired, a.IsExpired(now))
			assert.Equal(t, !tt.expired, a.IsActive(now))
		})
	}
}
