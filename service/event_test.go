package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/content_service/models/enums"
)

func TestEventStatusAt(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want enums.EventStatus
	}{
		{"开始之前", start.Add(-time.Second), enums.EventStatusUpcoming},
		{"恰好开始时刻", start, enums.EventStatusOngoing},
		{"进行中", start.Add(24 * time.Hour), enums.EventStatusOngoing},
		{"恰好结束时刻", end, enums.EventStatusOngoing},
		{"结束之后", end.Add(time.Second), enums.EventStatusFinished},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EventStatusAt(tc.now, start, end))
		})
	}
}

func TestEventStatusAtZeroLengthWindow(t *testing.T) {
	instant := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// start == end 的活动只在该时刻算进行中
	assert.Equal(t, enums.EventStatusOngoing, EventStatusAt(instant, instant, instant))
	assert.Equal(t, enums.EventStatusUpcoming, EventStatusAt(instant.Add(-time.Minute), instant, instant))
	assert.Equal(t, enums.EventStatusFinished, EventStatusAt(instant.Add(time.Minute), instant, instant))
}
