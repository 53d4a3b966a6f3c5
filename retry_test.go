package queuectl_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/queuectl/queuectl"
)

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		name     string
		base     int
		attempts int
		want     time.Duration
	}{
		{"base 2 first attempt", 2, 1, 2 * time.Second},
		{"base 2 second attempt", 2, 2, 4 * time.Second},
		{"base 2 third attempt", 2, 3, 8 * time.Second},
		{"base 3", 3, 2, 9 * time.Second},
		{"base 1 is constant", 1, 10, time.Second},
		{"base below 1 treated as 1", 0, 5, time.Second},
		{"zero attempts", 2, 0, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queuectl.BackoffDelay(tt.base, tt.attempts))
		})
	}
}

func TestBackoffDelaySaturates(t *testing.T) {
	huge := queuectl.BackoffDelay(2, 100)
	assert.Positive(t, huge)
	assert.Equal(t, huge, queuectl.BackoffDelay(2, 200))
}
