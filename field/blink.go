package field

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	blinkInterval   = 500 * time.Millisecond
	blinkPauseDelay = 500 * time.Millisecond
)

var lastBlinkID int64

func nextBlinkID() int64 { return atomic.AddInt64(&lastBlinkID, 1) }

// blinkMsg toggles cursor visibility. The epoch guards against stale
// timers: a tick scheduled before the blinker was restarted, stopped,
// or paused silently no-ops.
type blinkMsg struct {
	id    int64
	epoch int
}

// blinkResumeMsg ends a pause. Only the resume scheduled by the most
// recent Pause (matching pauseEpoch) takes effect, so continuous
// typing keeps the cursor solid until the last pause expires.
type blinkResumeMsg struct {
	id         int64
	pauseEpoch int
	epoch      int
}

// Blink drives the cursor's blink state. There is no timer-handle
// cancellation under the Bubble Tea scheduler; every state-invalidating
// event advances the epoch instead, and in-flight ticks carry the
// epoch they were scheduled under.
type Blink struct {
	id         int64
	visible    bool
	paused     bool
	epoch      int
	pauseEpoch int
}

func NewBlink() Blink {
	return Blink{id: nextBlinkID(), visible: true}
}

// Visible reports whether the cursor should be painted. A paused
// blinker is always visible.
func (b *Blink) Visible() bool { return b.paused || b.visible }

// Start makes the cursor visible and schedules the first toggle.
func (b *Blink) Start() tea.Cmd {
	b.visible = true
	b.paused = false
	b.epoch++
	return b.tick(b.epoch)
}

// Stop forces the cursor invisible and invalidates scheduled toggles.
func (b *Blink) Stop() {
	b.epoch++
	b.visible = false
	b.paused = false
}

// Pause forces the cursor visible and schedules a resume. Repeated
// pauses supersede earlier scheduled resumes via pauseEpoch.
func (b *Blink) Pause() tea.Cmd {
	b.paused = true
	b.pauseEpoch++
	b.epoch++
	pauseEpoch, epoch := b.pauseEpoch, b.epoch
	id := b.id
	return tea.Tick(blinkPauseDelay, func(time.Time) tea.Msg {
		return blinkResumeMsg{id: id, pauseEpoch: pauseEpoch, epoch: epoch}
	})
}

// Update routes blink timer messages. It returns the follow-up command
// (the next scheduled toggle) and whether the message was consumed.
func (b *Blink) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case blinkMsg:
		if msg.id != b.id {
			return nil, false
		}
		return b.toggle(msg.epoch), true
	case blinkResumeMsg:
		if msg.id != b.id {
			return nil, false
		}
		if msg.pauseEpoch != b.pauseEpoch {
			return nil, true
		}
		b.paused = false
		if msg.epoch != b.epoch {
			return nil, true
		}
		// Resume with the cursor showing a full interval.
		b.visible = true
		b.epoch++
		return b.tick(b.epoch), true
	}
	return nil, false
}

func (b *Blink) toggle(epoch int) tea.Cmd {
	if b.paused || epoch != b.epoch {
		return nil
	}
	b.visible = !b.visible
	b.epoch++
	return b.tick(b.epoch)
}

func (b *Blink) tick(epoch int) tea.Cmd {
	id := b.id
	return tea.Tick(blinkInterval, func(time.Time) tea.Msg {
		return blinkMsg{id: id, epoch: epoch}
	})
}
