package popzy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransitionProgress(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := TransitionConfig{Duration: 100 * time.Millisecond}

	tests := []struct {
		name  string
		trans *transition
		now   time.Time
		cfg   TransitionConfig
		want  float64
	}{
		{name: "none", trans: nil, cfg: cfg, want: 1},
		{name: "opening pending", trans: &transition{kind: transitionOpening}, cfg: cfg, want: 0},
		{name: "closing pending", trans: &transition{kind: transitionClosing}, cfg: cfg, want: 1},
		{
			name:  "opening halfway",
			trans: &transition{kind: transitionOpening, running: true, started: start},
			now:   start.Add(50 * time.Millisecond),
			cfg:   cfg,
			want:  0.5,
		},
		{
			name:  "closing quarter",
			trans: &transition{kind: transitionClosing, running: true, started: start},
			now:   start.Add(25 * time.Millisecond),
			cfg:   cfg,
			want:  0.75,
		},
		{
			name:  "opening overdue",
			trans: &transition{kind: transitionOpening, running: true, started: start},
			now:   start.Add(time.Second),
			cfg:   cfg,
			want:  1,
		},
		{name: "opening done", trans: &transition{kind: transitionOpening, done: true}, cfg: cfg, want: 1},
		{name: "closing done", trans: &transition{kind: transitionClosing, done: true}, cfg: cfg, want: 0},
		{
			name:  "reduced motion",
			trans: &transition{kind: transitionOpening, running: true, started: start},
			now:   start,
			cfg:   TransitionConfig{Duration: time.Second, ReducedMotion: true},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.trans.progress(tt.now, tt.cfg), 0.0001)
		})
	}
}

func TestSlideOffset(t *testing.T) {
	assert.Equal(t, SlideRows, slideOffset(0))
	assert.Equal(t, 0, slideOffset(1))
}

func TestTransitionConfig_Instant(t *testing.T) {
	assert.False(t, DefaultTransition().instant())
	assert.True(t, TransitionConfig{}.instant())
	assert.True(t, TransitionConfig{Duration: time.Second, ReducedMotion: true}.instant())
}
