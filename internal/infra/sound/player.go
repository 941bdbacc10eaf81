// Package sound emits terminal-bell audio feedback for engine cues.
// Tone synthesis is presentation and lives outside the core; the player
// only honours the sound-enabled preference and rings the bell.
package sound

import (
	"io"

	"github.com/orbitlabs/missionctl/internal/domain"
)

// Ensure Player implements domain.SoundPlayer.
var _ domain.SoundPlayer = (*Player)(nil)

// Player writes a bell character for every cue while sound is enabled.
type Player struct {
	settings domain.SettingsRepository
	out      io.Writer
}

// New creates a new Player writing to out.
func New(settings domain.SettingsRepository, out io.Writer) *Player {
	return &Player{
		settings: settings,
		out:      out,
	}
}

// Play rings the terminal bell unless sound is disabled. Cue identity is
// kept for richer players; the bell sounds the same for every cue.
func (p *Player) Play(_ domain.SoundCue) {
	if p.out == nil || p.settings == nil {
		return
	}
	prefs, err := p.settings.Load()
	if err != nil || !prefs.SoundEnabled {
		return
	}
	_, _ = io.WriteString(p.out, "\a")
}
