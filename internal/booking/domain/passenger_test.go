package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanCancel(t *testing.T) {
	now := time.Now()
	passenger := Passenger{ID: 1, SeatNumber: 3, TravelID: 9}

	tests := []struct {
		name      string
		departure time.Time
		want      bool
	}{
		{"next week", now.Add(7 * 24 * time.Hour), true},
		{"61 minutes ahead", now.Add(61 * time.Minute), true},
		{"exactly one hour ahead", now.Add(time.Hour), false},
		{"59 minutes ahead", now.Add(59 * time.Minute), false},
		{"already departed", now.Add(-time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, passenger.CanCancel(tt.departure, now))
		})
	}
}
