package popzy

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SlideRows is how far a dialog travels vertically while it animates.
const SlideRows = 2

// TransitionConfig controls dialog animation timing.
type TransitionConfig struct {
	// Duration of the show/hide animation.
	Duration time.Duration
	// Frame is the interval between animation frames.
	Frame time.Duration
	// Grace is added to Duration for the fallback timer that completes a
	// transition even if the frame loop stalls.
	Grace time.Duration
	// ReducedMotion skips the animation; transitions complete on the next turn.
	ReducedMotion bool
}

// DefaultTransition returns the default animation timing.
func DefaultTransition() TransitionConfig {
	return TransitionConfig{
		Duration: 180 * time.Millisecond,
		Frame:    30 * time.Millisecond,
		Grace:    250 * time.Millisecond,
	}
}

func (c TransitionConfig) instant() bool {
	return c.ReducedMotion || c.Duration <= 0
}

type transitionKind int

const (
	transitionOpening transitionKind = iota
	transitionClosing
)

// transition is the pending continuation of a dialog's last open or close.
// Only the current generation's continuation ever runs; starting a new
// transition supersedes the previous one.
type transition struct {
	gen     uint64
	kind    transitionKind
	started time.Time
	running bool
	done    bool
	onEnd   func() tea.Cmd
}

// showMsg applies the visible class one turn after open so the first frame
// renders the hidden state.
type showMsg struct {
	id  string
	gen uint64
}

type frameMsg struct {
	id  string
	gen uint64
}

type transitionEndMsg struct {
	id       string
	gen      uint64
	fallback bool
}

// progress returns how visible the dialog is, from 0 (hidden) to 1 (shown).
func (t *transition) progress(now time.Time, cfg TransitionConfig) float64 {
	if t == nil {
		return 1
	}

	opening := t.kind == transitionOpening
	switch {
	case t.done || cfg.instant():
		if opening {
			return 1
		}
		return 0
	case !t.running:
		if opening {
			return 0
		}
		return 1
	}

	p := float64(now.Sub(t.started)) / float64(cfg.Duration)
	p = math.Max(0, math.Min(1, p))
	if !opening {
		return 1 - p
	}
	return p
}

// slideOffset converts progress into a vertical offset in rows.
func slideOffset(progress float64) int {
	return int(math.Round((1 - progress) * SlideRows))
}

// beginTransition records a new pending continuation for d, superseding any
// earlier one, and returns its generation.
func (m *Manager) beginTransition(d *Modal, kind transitionKind, onEnd func() tea.Cmd) uint64 {
	m.gen++
	d.trans = &transition{gen: m.gen, kind: kind, onEnd: onEnd}
	return m.gen
}

// startTransition starts the animation of d's pending transition. Instant
// transitions complete on the next turn; animated ones tick frames and arm a
// fallback timer that completes the transition if no frame finishes it.
func (m *Manager) startTransition(d *Modal) tea.Cmd {
	t := d.trans
	if t == nil || t.done || t.running {
		return nil
	}

	id, gen := d.id, t.gen
	if m.trans.instant() {
		return func() tea.Msg { return transitionEndMsg{id: id, gen: gen} }
	}

	t.running = true
	t.started = m.clock()
	return tea.Batch(
		m.frameTick(id, gen),
		tea.Tick(m.trans.Duration+m.trans.Grace, func(time.Time) tea.Msg {
			return transitionEndMsg{id: id, gen: gen, fallback: true}
		}),
	)
}

func (m *Manager) frameTick(id string, gen uint64) tea.Cmd {
	frame := m.trans.Frame
	if frame <= 0 {
		frame = DefaultTransition().Frame
	}
	return tea.Tick(frame, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}

// current returns the dialog addressed by a transition message when gen is
// still its pending, unfinished transition.
func (m *Manager) current(id string, gen uint64) (*Modal, bool) {
	d, ok := m.modals[id]
	if !ok || d.trans == nil || d.trans.gen != gen || d.trans.done {
		return nil, false
	}
	return d, true
}

func (m *Manager) handleShow(msg showMsg) tea.Cmd {
	d, ok := m.current(msg.id, msg.gen)
	if !ok || d.state != StateOpen {
		m.logger.Debug().Str("dialog", msg.id).Msg("stale show ignored")
		return nil
	}
	d.visible = true
	d.root.AddClass(ClassVisible)
	return tea.Batch(d.initModels(), m.startTransition(d))
}

func (m *Manager) handleFrame(msg frameMsg) tea.Cmd {
	d, ok := m.current(msg.id, msg.gen)
	if !ok {
		return nil
	}
	if m.clock().Sub(d.trans.started) >= m.trans.Duration {
		return m.finish(d)
	}
	return m.frameTick(msg.id, msg.gen)
}

func (m *Manager) handleEnd(msg transitionEndMsg) tea.Cmd {
	d, ok := m.current(msg.id, msg.gen)
	if !ok {
		return nil
	}
	if msg.fallback {
		m.logger.Debug().Str("dialog", msg.id).Msg("transition completed by fallback timer")
	}
	return m.finish(d)
}

// finish runs d's pending continuation exactly once.
func (m *Manager) finish(d *Modal) tea.Cmd {
	t := d.trans
	t.done = true
	t.running = false
	if t.onEnd == nil {
		return nil
	}
	return t.onEnd()
}
