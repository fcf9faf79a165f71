package popzy

import "github.com/rs/zerolog"

// ScrollTarget is the page whose scrolling is suppressed while dialogs are open.
type ScrollTarget interface {
	// MeasureScrollbar returns the width in columns the target's scrollbar occupies.
	MeasureScrollbar() int
	// SetScrollLocked toggles the lock. gutter is the measured scrollbar width the
	// target should pad with so content does not shift when the scrollbar hides.
	SetScrollLocked(locked bool, gutter int)
}

// ScrollLock is a reference count of holders that want the page locked. The
// target is locked on the first hold and unlocked when the last hold is released.
type ScrollLock struct {
	target ScrollTarget
	logger zerolog.Logger
	count  int

	gutter   int
	measured bool
}

// NewScrollLock creates a lock for target. target may be nil, in which case only
// the count is tracked.
func NewScrollLock(target ScrollTarget, logger zerolog.Logger) *ScrollLock {
	return &ScrollLock{target: target, logger: logger}
}

// Acquire adds a hold.
func (l *ScrollLock) Acquire() {
	l.count++
	if l.count == 1 {
		l.logger.Debug().Msg("scroll locked")
		if l.target != nil {
			l.target.SetScrollLocked(true, l.Gutter())
		}
	}
}

// Release drops a hold. Releasing with no holds is ignored.
func (l *ScrollLock) Release() {
	if l.count == 0 {
		l.logger.Warn().Msg("scroll lock released with no holders")
		return
	}
	l.count--
	if l.count == 0 {
		l.logger.Debug().Msg("scroll unlocked")
		if l.target != nil {
			l.target.SetScrollLocked(false, 0)
		}
	}
}

// Locked reports whether any hold is outstanding.
func (l *ScrollLock) Locked() bool { return l.count > 0 }

// Holds returns the number of outstanding holds.
func (l *ScrollLock) Holds() int { return l.count }

// Gutter returns the target's scrollbar width, measured on first use.
func (l *ScrollLock) Gutter() int {
	if l.measured || l.target == nil {
		return l.gutter
	}
	l.gutter = l.target.MeasureScrollbar()
	l.measured = true
	return l.gutter
}
