package tui

import "github.com/mkruglov/retris/internal/core"

// AudioSink receives game events that would trigger sound effects.
// Terminals have no audio of their own, so the default sink is a
// no-op; a sink can be swapped in where a bell or desktop notification
// makes sense.
type AudioSink interface {
	Play(ev core.Event)
}

// NopAudio discards every event.
type NopAudio struct{}

// Play implements AudioSink.
func (NopAudio) Play(core.Event) {}
